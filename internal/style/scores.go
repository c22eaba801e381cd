package style

import (
	"fmt"
	"math"

	"github.com/Veraticus/wardrobe/internal/model"
)

// Sub-score labels in display order.
const (
	LabelColorScore = "Colour match"
	LabelBodyScore  = "Body match"
	LabelAgeScore   = "Age match"
)

// Placeholders shown instead of an empty list.
const (
	NoRecommendations = "No recommendations yet. Generate one to get today's outfit ideas."
	NoOutfits         = "No outfits yet. Add clothes to your wardrobe first."
	defaultOutfitName = "Outfit suggestion"
)

const (
	maxOutfits        = 6
	maxItemsPerOutfit = 3

	// DefaultOutfitScore stands in for an outfit the backend sent without a score.
	DefaultOutfitScore = 0.8
)

// ScoreLine is one sub-score prepared for a bar and a percentage label.
type ScoreLine struct {
	Label    string  `json:"label"`
	Raw      float64 `json:"raw"`
	Fraction float64 `json:"fraction"`
	Percent  int     `json:"percent"`
}

// ScoreCard is a recommendation result prepared for display.
type ScoreCard struct {
	Item       model.WardrobeItem `json:"item"`
	ItemName   string             `json:"item_name"`
	TotalLabel string             `json:"total_label"`
	Scores     []ScoreLine        `json:"scores"`
	Total      float64            `json:"total"`
}

// Recommendations is the display data for a list of results.
type Recommendations struct {
	Placeholder string      `json:"placeholder"`
	Cards       []ScoreCard `json:"cards"`
}

// IsEmpty returns true if there is nothing but the placeholder to show.
func (r Recommendations) IsEmpty() bool {
	return len(r.Cards) == 0
}

// ClampFraction bounds v to [0, 1]. NaN becomes 0.
func ClampFraction(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(v, 1))
}

// Percent is the clamped fraction of v as a whole percentage.
func Percent(v float64) int {
	return int(math.Round(ClampFraction(v) * 100))
}

// NewScoreLine prepares one labelled score. Absent scores count as 0.
func NewScoreLine(label string, s model.Score) ScoreLine {
	raw := s.Or(0)
	return ScoreLine{
		Label:    label,
		Raw:      raw,
		Fraction: ClampFraction(raw),
		Percent:  Percent(raw),
	}
}

// NormalizeResult prepares a single recommendation result.
func NormalizeResult(r model.RecommendationResult) ScoreCard {
	total := r.TotalScore.Or(0)
	if math.IsNaN(total) || math.IsInf(total, 0) {
		total = 0
	}
	return ScoreCard{
		Item:       r.Item,
		ItemName:   r.Item.Name,
		Total:      total,
		TotalLabel: fmt.Sprintf("%.2f", total),
		Scores: []ScoreLine{
			NewScoreLine(LabelColorScore, r.ColorScore),
			NewScoreLine(LabelBodyScore, r.BodyScore),
			NewScoreLine(LabelAgeScore, r.AgeScore),
		},
	}
}

// NormalizeResults prepares every result, or only the placeholder when there are none.
func NormalizeResults(results []model.RecommendationResult) Recommendations {
	if len(results) == 0 {
		return Recommendations{Placeholder: NoRecommendations}
	}

	cards := make([]ScoreCard, 0, len(results))
	for _, r := range results {
		cards = append(cards, NormalizeResult(r))
	}
	return Recommendations{Cards: cards}
}

// OutfitCard is an outfit prepared for display.
type OutfitCard struct {
	Name     string               `json:"name"`
	Occasion string               `json:"occasion"`
	Items    []model.WardrobeItem `json:"items"`
	Percent  int                  `json:"percent"`
}

// Outfits is the display data for the outfit listing.
type Outfits struct {
	Placeholder string       `json:"placeholder"`
	Cards       []OutfitCard `json:"cards"`
}

// NormalizeOutfits prepares at most six outfits with three items each.
func NormalizeOutfits(outfits []model.Outfit) Outfits {
	if len(outfits) == 0 {
		return Outfits{Placeholder: NoOutfits}
	}

	if len(outfits) > maxOutfits {
		outfits = outfits[:maxOutfits]
	}

	cards := make([]OutfitCard, 0, len(outfits))
	for _, o := range outfits {
		name := o.Name
		if name == "" {
			name = defaultOutfitName
		}
		items := o.Items
		if len(items) > maxItemsPerOutfit {
			items = items[:maxItemsPerOutfit]
		}
		cards = append(cards, OutfitCard{
			Name:     name,
			Occasion: o.Occasion,
			Items:    append([]model.WardrobeItem(nil), items...),
			Percent:  Percent(o.Score.Or(DefaultOutfitScore)),
		})
	}
	return Outfits{Cards: cards}
}
