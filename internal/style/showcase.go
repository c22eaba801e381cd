package style

import (
	"fmt"

	"github.com/Veraticus/wardrobe/internal/model"
)

const maxShowcase = 4

// ShowcaseCard is a highlighted product-style card.
type ShowcaseCard struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var defaultShowcase = []ShowcaseCard{
	{
		Category:    "Essential",
		Name:        "Early-autumn basic knit",
		Description: "A soft off-white knit; pair it with high-waisted trousers for a refined look.",
	},
	{
		Category:    "Outer",
		Name:        "Lightweight technical jacket",
		Description: "A clean cut in windproof fabric keeps the daily commute polished.",
	},
}

// Showcase highlights the first four wardrobe items, or two evergreen
// suggestions when the wardrobe is empty.
func Showcase(items []model.WardrobeItem) []ShowcaseCard {
	if len(items) == 0 {
		out := make([]ShowcaseCard, len(defaultShowcase))
		copy(out, defaultShowcase)
		return out
	}

	if len(items) > maxShowcase {
		items = items[:maxShowcase]
	}

	cards := make([]ShowcaseCard, 0, len(items))
	for _, item := range items {
		tone := item.MainColorHex
		if tone == "" {
			tone = "neutral"
		}
		silhouette := item.Silhouette
		if silhouette == "" {
			silhouette = "many silhouettes"
		}
		cards = append(cards, ShowcaseCard{
			Category:    item.Category,
			Name:        item.Name,
			Description: fmt.Sprintf("Its %s tone suits your colouring and it mixes with %s in your wardrobe.", tone, silhouette),
		})
	}
	return cards
}
