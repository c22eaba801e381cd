package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantValue float64
		wantValid bool
	}{
		{name: "number", payload: `{"total_score": 0.82}`, wantValue: 0.82, wantValid: true},
		{name: "out of range number", payload: `{"total_score": 1.4}`, wantValue: 1.4, wantValid: true},
		{name: "integer", payload: `{"total_score": 1}`, wantValue: 1, wantValid: true},
		{name: "missing", payload: `{}`},
		{name: "null", payload: `{"total_score": null}`},
		{name: "string", payload: `{"total_score": "0.9"}`},
		{name: "bool", payload: `{"total_score": true}`},
		{name: "object", payload: `{"total_score": {"v": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r RecommendationResult
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &r))

			assert.Equal(t, tt.wantValid, r.TotalScore.Valid)
			assert.InDelta(t, tt.wantValue, r.TotalScore.Value, 1e-9)
		})
	}
}

func TestScore_Or(t *testing.T) {
	assert.InDelta(t, 0.0, Score{}.Or(0), 1e-9)
	assert.InDelta(t, 0.8, Score{}.Or(0.8), 1e-9)
	assert.InDelta(t, 0.3, NewScore(0.3).Or(0.8), 1e-9)
}

func TestRecommendationResult_Decode(t *testing.T) {
	payload := `{
		"item": {"id": 3, "name": "Camel coat", "category": "coat", "colors": ["#C19A6B"]},
		"total_score": 0.74,
		"color_score": 0.9,
		"body_score": "n/a"
	}`

	var r RecommendationResult
	require.NoError(t, json.Unmarshal([]byte(payload), &r))

	assert.Equal(t, int64(3), r.Item.ID)
	assert.Equal(t, []string{"#C19A6B"}, r.Item.Colors)
	assert.True(t, r.ColorScore.Valid)
	assert.False(t, r.BodyScore.Valid)
	assert.False(t, r.AgeScore.Valid)
}
