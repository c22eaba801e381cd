package viewmodel

import (
	"time"

	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/style"
)

// Input is the state a dashboard is derived from.
type Input struct {
	LoadedAt        time.Time
	User            *model.UserProfile
	Group           string
	Wardrobe        []model.WardrobeItem
	Recommendations []model.RecommendationResult
	Outfits         []model.Outfit
}

// Dashboard is every view of the client derived from one state snapshot.
type Dashboard struct {
	LoadedAt        time.Time             `json:"loaded_at"`
	Profile         ProfileView           `json:"profile"`
	Wardrobe        WardrobeView          `json:"wardrobe"`
	Tips            []style.Tip           `json:"tips"`
	Showcase        []style.ShowcaseCard  `json:"showcase"`
	Recommendations style.Recommendations `json:"recommendations"`
	Outfits         style.Outfits         `json:"outfits"`
	SignedIn        bool                  `json:"signed_in"`
}

// NewDashboard derives all views from in.
func NewDashboard(in Input) Dashboard {
	signedIn := in.User != nil
	return Dashboard{
		LoadedAt:        in.LoadedAt,
		SignedIn:        signedIn,
		Profile:         NewProfileView(in.User),
		Wardrobe:        NewWardrobeView(in.Wardrobe, in.Group, signedIn),
		Tips:            style.GenerateTips(in.User),
		Showcase:        style.Showcase(in.Wardrobe),
		Recommendations: style.NormalizeResults(in.Recommendations),
		Outfits:         style.NormalizeOutfits(in.Outfits),
	}
}
