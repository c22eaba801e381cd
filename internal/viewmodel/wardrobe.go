package viewmodel

import (
	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/style"
)

// SwatchView is one colour chip of an item card.
type SwatchView struct {
	Hex     string `json:"hex"`
	Percent int    `json:"percent"`
}

// ItemCard is one wardrobe item prepared for display.
type ItemCard struct {
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	CategoryLabel string       `json:"category_label"`
	Group         string       `json:"group"`
	GroupLabel    string       `json:"group_label"`
	MainColor     string       `json:"main_color"`
	ImageURL      string       `json:"image_url"`
	Swatches      []SwatchView `json:"swatches"`
	ID            int64        `json:"id"`
}

// GroupTab is one entry of the category filter.
type GroupTab struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// WardrobeView is the wardrobe page.
type WardrobeView struct {
	Group       string        `json:"group"`
	Placeholder string        `json:"placeholder"`
	Tabs        []GroupTab    `json:"tabs"`
	Items       []ItemCard    `json:"items"`
	Summary     style.Summary `json:"summary"`
	Stats       style.Stats   `json:"stats"`
}

// NewItemCard prepares one item. Colours that are not valid hex codes are dropped.
func NewItemCard(item model.WardrobeItem) ItemCard {
	group := style.CategoryGroupOf(item)
	card := ItemCard{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		CategoryLabel: style.CategoryLabel(item.Category),
		Group:         group,
		GroupLabel:    style.GroupLabel(group),
		ImageURL:      item.ImageURL,
	}
	if common.IsHexColor(item.MainColorHex) {
		card.MainColor = item.MainColorHex
	}

	if len(item.Palette) > 0 {
		for _, sw := range item.Palette {
			if !common.IsHexColor(sw.Hex) {
				continue
			}
			card.Swatches = append(card.Swatches, SwatchView{Hex: sw.Hex, Percent: style.Percent(sw.Ratio)})
		}
		return card
	}

	for _, c := range item.Colors {
		if common.IsHexColor(c) {
			card.Swatches = append(card.Swatches, SwatchView{Hex: c})
		}
	}
	return card
}

// NewWardrobeView builds the wardrobe page for the given filter group.
// Stats and summary always cover the whole wardrobe; only the item list is filtered.
func NewWardrobeView(items []model.WardrobeItem, group string, signedIn bool) WardrobeView {
	if group == "" {
		group = style.GroupAll
	}

	view := WardrobeView{
		Group:   group,
		Summary: style.Summarize(items),
		Stats:   style.ComputeStats(items),
		Tabs:    groupTabs(items, group),
	}

	if !signedIn {
		view.Placeholder = SignedOutWardrobe
		return view
	}
	if len(items) == 0 {
		view.Placeholder = EmptyWardrobe
		return view
	}

	filtered := style.FilterByGroup(items, group)
	if len(filtered) == 0 {
		view.Placeholder = EmptyGroup
		return view
	}

	view.Items = make([]ItemCard, 0, len(filtered))
	for _, item := range filtered {
		view.Items = append(view.Items, NewItemCard(item))
	}
	return view
}

func groupTabs(items []model.WardrobeItem, active string) []GroupTab {
	counts := make(map[string]int)
	for _, item := range items {
		counts[style.CategoryGroupOf(item)]++
	}

	groups := style.Groups()
	tabs := make([]GroupTab, 0, len(groups))
	for _, g := range groups {
		count := counts[g]
		if g == style.GroupAll {
			count = len(items)
		}
		tabs = append(tabs, GroupTab{
			Code:   g,
			Label:  style.GroupLabel(g),
			Count:  count,
			Active: g == active,
		})
	}
	return tabs
}

// NextGroup returns the group after current in filter order, wrapping around.
func NextGroup(current string) string {
	groups := style.Groups()
	for i, g := range groups {
		if g == current {
			return groups[(i+1)%len(groups)]
		}
	}
	return style.GroupAll
}
