// Package model defines the entities exchanged with the wardrobe backend.
package model

import (
	"github.com/go-playground/validator/v10"
)

// UserProfile is the signed-in user's stored attributes as returned by the backend.
// Zero values mean the attribute is unset.
type UserProfile struct {
	Username   string `json:"username"`
	BodyShape  string `json:"body_shape,omitempty"`
	SkinSeason string `json:"skin_season,omitempty"`
	Age        int    `json:"age,omitempty"`
	Height     int    `json:"height,omitempty"`
	Weight     int    `json:"weight,omitempty"`
}

// HasAge reports whether the profile carries an age.
func (p UserProfile) HasAge() bool {
	return p.Age > 0
}

// HasMeasurements reports whether height or weight is set.
func (p UserProfile) HasMeasurements() bool {
	return p.Height > 0 || p.Weight > 0
}

// ProfileUpdate is a partial profile edit. Nil fields are left untouched by the backend.
type ProfileUpdate struct {
	Age        *int    `json:"age,omitempty" validate:"omitempty,min=10,max=100"`
	Height     *int    `json:"height,omitempty" validate:"omitempty,gt=0"`
	Weight     *int    `json:"weight,omitempty" validate:"omitempty,gt=0"`
	SkinSeason *string `json:"skin_season,omitempty" validate:"omitempty,oneof=spring summer autumn winter unknown"`
	BodyShape  *string `json:"body_shape,omitempty" validate:"omitempty,oneof=H A X V O"`
}

// Validate checks field ranges before the update is sent.
func (u *ProfileUpdate) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}

// IsEmpty returns true if the update would not change anything.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Age == nil && u.Height == nil && u.Weight == nil &&
		u.SkinSeason == nil && u.BodyShape == nil
}

// Apply returns a copy of the profile with the update's set fields applied.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.SkinSeason != nil {
		p.SkinSeason = *u.SkinSeason
	}
	if u.BodyShape != nil {
		p.BodyShape = *u.BodyShape
	}
	return p
}
