package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestProfileUpdate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		update  ProfileUpdate
		wantErr bool
	}{
		{name: "empty update", update: ProfileUpdate{}},
		{name: "age lower bound", update: ProfileUpdate{Age: intPtr(10)}},
		{name: "age upper bound", update: ProfileUpdate{Age: intPtr(100)}},
		{name: "age too young", update: ProfileUpdate{Age: intPtr(9)}, wantErr: true},
		{name: "age too old", update: ProfileUpdate{Age: intPtr(101)}, wantErr: true},
		{name: "height positive", update: ProfileUpdate{Height: intPtr(168)}},
		{name: "height zero", update: ProfileUpdate{Height: intPtr(0)}, wantErr: true},
		{name: "weight negative", update: ProfileUpdate{Weight: intPtr(-3)}, wantErr: true},
		{name: "known season", update: ProfileUpdate{SkinSeason: strPtr("autumn")}},
		{name: "unknown season code", update: ProfileUpdate{SkinSeason: strPtr("unknown")}},
		{name: "invalid season", update: ProfileUpdate{SkinSeason: strPtr("monsoon")}, wantErr: true},
		{name: "canonical shape", update: ProfileUpdate{BodyShape: strPtr("V")}},
		{name: "legacy shape rejected", update: ProfileUpdate{BodyShape: strPtr("T")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileUpdate_Apply(t *testing.T) {
	base := UserProfile{Username: "mia", Age: 30, BodyShape: "H", SkinSeason: "summer"}

	got := ProfileUpdate{Age: intPtr(31), BodyShape: strPtr("X")}.Apply(base)

	assert.Equal(t, UserProfile{Username: "mia", Age: 31, BodyShape: "X", SkinSeason: "summer"}, got)
	assert.Equal(t, 30, base.Age, "original profile is not modified")
}

func TestProfileUpdate_IsEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())
	assert.False(t, ProfileUpdate{Weight: intPtr(60)}.IsEmpty())
}

func TestUserProfile_Helpers(t *testing.T) {
	assert.False(t, UserProfile{}.HasAge())
	assert.True(t, UserProfile{Age: 25}.HasAge())
	assert.False(t, UserProfile{}.HasMeasurements())
	assert.True(t, UserProfile{Weight: 55}.HasMeasurements())
}
