package style

import (
	"testing"

	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowcase_EmptyWardrobe(t *testing.T) {
	cards := Showcase(nil)

	require.Len(t, cards, 2)
	assert.Equal(t, "Essential", cards[0].Category)
	assert.Equal(t, "Outer", cards[1].Category)
}

func TestShowcase_FirstFourItems(t *testing.T) {
	wardrobe := []model.WardrobeItem{
		{Name: "Linen shirt", Category: "shirt", MainColorHex: "#F5F5DC", Silhouette: "relaxed"},
		{Name: "Jeans", Category: "jeans"},
		{Name: "C", Category: "coat"},
		{Name: "D", Category: "dress"},
		{Name: "E", Category: "shoes"},
	}

	cards := Showcase(wardrobe)

	require.Len(t, cards, 4)
	assert.Equal(t, "Linen shirt", cards[0].Name)
	assert.Contains(t, cards[0].Description, "#F5F5DC")
	assert.Contains(t, cards[0].Description, "relaxed")
	assert.Contains(t, cards[1].Description, "neutral")
	assert.Contains(t, cards[1].Description, "many silhouettes")
	assert.Equal(t, "D", cards[3].Name)
}
