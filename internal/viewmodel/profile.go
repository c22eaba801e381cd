package viewmodel

import (
	"fmt"

	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/style"
)

// Placeholders shown when there is no signed-in user.
const (
	SignedOutProfile  = "Not signed in or profile unavailable. Please log in first."
	SignedOutWardrobe = "Log in to see your wardrobe."
	EmptyWardrobe     = "Your wardrobe is empty. Upload your first item."
	EmptyGroup        = "No items in this group."
	NotSet            = "—"
)

// ProfileView is the profile card.
type ProfileView struct {
	Username         string `json:"username"`
	ShapeCode        string `json:"shape_code"`
	ShapeLabel       string `json:"shape_label"`
	ShapeDescription string `json:"shape_description"`
	ShapeIcon        string `json:"shape_icon"`
	SeasonCode       string `json:"season_code"`
	SeasonLabel      string `json:"season_label"`
	Age              string `json:"age"`
	Height           string `json:"height"`
	Weight           string `json:"weight"`
	Placeholder      string `json:"placeholder"`
	SignedIn         bool   `json:"signed_in"`
}

// NewProfileView builds the profile card. A nil user yields the signed-out placeholder.
func NewProfileView(user *model.UserProfile) ProfileView {
	if user == nil {
		return ProfileView{Placeholder: SignedOutProfile}
	}

	shape := style.ResolveBodyShape(user.BodyShape)
	return ProfileView{
		SignedIn:         true,
		Username:         user.Username,
		ShapeCode:        user.BodyShape,
		ShapeLabel:       shape.Label,
		ShapeDescription: shape.Description,
		ShapeIcon:        shape.Icon,
		SeasonCode:       user.SkinSeason,
		SeasonLabel:      style.SkinSeasonLabel(user.SkinSeason),
		Age:              FormatMeasurement(user.Age, ""),
		Height:           FormatMeasurement(user.Height, "cm"),
		Weight:           FormatMeasurement(user.Weight, "kg"),
	}
}

// FormatMeasurement renders a positive value with its unit, or NotSet.
func FormatMeasurement(v int, unit string) string {
	if v <= 0 {
		return NotSet
	}
	if unit == "" {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%d %s", v, unit)
}
