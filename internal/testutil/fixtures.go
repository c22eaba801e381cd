// Package testutil provides a fake wardrobe backend and fixture builders for tests.
package testutil

import (
	"github.com/Veraticus/wardrobe/internal/model"
)

// ItemBuilder provides a fluent interface for constructing wardrobe items.
type ItemBuilder struct {
	items  []model.WardrobeItem
	nextID int64
}

// NewItemBuilder creates an empty builder whose ids start at 1.
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{nextID: 1}
}

// With adds one item of the given category with the given colours.
func (b *ItemBuilder) With(name, category string, colors ...string) *ItemBuilder {
	item := model.WardrobeItem{
		ID:       b.nextID,
		Name:     name,
		Category: category,
		Colors:   colors,
	}
	if len(colors) > 0 {
		item.MainColorHex = colors[0]
		for _, c := range colors {
			item.Palette = append(item.Palette, model.Swatch{Hex: c, Ratio: 1 / float64(len(colors))})
		}
	}
	b.nextID++
	b.items = append(b.items, item)
	return b
}

// WithGroup sets the category group of the most recently added item.
func (b *ItemBuilder) WithGroup(group string) *ItemBuilder {
	if n := len(b.items); n > 0 {
		b.items[n-1].CategoryGroup = group
	}
	return b
}

// WithCapsule adds a small everyday wardrobe.
func (b *ItemBuilder) WithCapsule() *ItemBuilder {
	return b.
		With("White tee", "tshirt", "#FFFFFF").WithGroup("tops").
		With("Striped tee", "tshirt", "#FFFFFF", "#1E3A8A").WithGroup("tops").
		With("Blue jeans", "jeans", "#1E3A8A").WithGroup("bottoms").
		With("Trench coat", "coat", "#C4A484").WithGroup("outerwear").
		With("Sneakers", "sneakers", "#FFFFFF", "#000000").WithGroup("shoes")
}

// Build returns a copy of the items built so far.
func (b *ItemBuilder) Build() []model.WardrobeItem {
	out := make([]model.WardrobeItem, len(b.items))
	copy(out, b.items)
	return out
}

// Profile returns a fully populated profile for username.
func Profile(username string) *model.UserProfile {
	return &model.UserProfile{
		Username:   username,
		Age:        29,
		Height:     168,
		Weight:     57,
		SkinSeason: "winter",
		BodyShape:  "X",
	}
}

// Results builds recommendation results pairing each item with the given total score.
func Results(items []model.WardrobeItem, totals ...float64) []model.RecommendationResult {
	results := make([]model.RecommendationResult, 0, len(items))
	for i, item := range items {
		r := model.RecommendationResult{
			Item:       item,
			ColorScore: model.NewScore(0.9),
			BodyScore:  model.NewScore(0.7),
			AgeScore:   model.NewScore(0.55),
		}
		if i < len(totals) {
			r.TotalScore = model.NewScore(totals[i])
		}
		results = append(results, r)
	}
	return results
}

// Outfits builds one outfit per occasion from items.
func Outfits(items []model.WardrobeItem, occasions ...string) []model.Outfit {
	outfits := make([]model.Outfit, 0, len(occasions))
	for i, occasion := range occasions {
		outfits = append(outfits, model.Outfit{
			Name:     occasion + " look",
			Occasion: occasion,
			Items:    items,
			Score:    model.NewScore(0.8 - float64(i)*0.1),
		})
	}
	return outfits
}
