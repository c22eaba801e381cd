package style

import "github.com/Veraticus/wardrobe/internal/model"

// CategoryCount is the number of wardrobe items in one category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary is the derived overview of a wardrobe.
type Summary struct {
	// TopCategory is nil for an empty wardrobe.
	TopCategory *CategoryCount `json:"top_category"`
	// Categories holds one entry per category in first-seen order.
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
}

// Count returns the number of items tallied for category.
func (s Summary) Count(category string) int {
	for _, c := range s.Categories {
		if c.Name == category {
			return c.Count
		}
	}
	return 0
}

// IsEmpty returns true if the summary covers no items.
func (s Summary) IsEmpty() bool {
	return s.Total == 0
}

// Summarize tallies items per category. The top category is the one with the
// strictly highest count; on a tie the category seen first wins.
func Summarize(items []model.WardrobeItem) Summary {
	summary := Summary{Total: len(items)}
	if len(items) == 0 {
		return summary
	}

	index := make(map[string]int, len(items))
	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(summary.Categories)
			index[item.Category] = pos
			summary.Categories = append(summary.Categories, CategoryCount{Name: item.Category})
		}
		summary.Categories[pos].Count++
	}

	top := summary.Categories[0]
	for _, c := range summary.Categories[1:] {
		if c.Count > top.Count {
			top = c
		}
	}
	summary.TopCategory = &top

	return summary
}

// Stats are the headline numbers of the wardrobe page.
type Stats struct {
	Total          int `json:"total"`
	Groups         int `json:"groups"`
	DistinctColors int `json:"distinct_colors"`
}

// ComputeStats counts items, distinct category groups and distinct colours.
// Groups fall back to the category code when the item has no group. Colours
// are compared exactly as given, so "#FFF" and "#fff" count twice.
func ComputeStats(items []model.WardrobeItem) Stats {
	groups := make(map[string]struct{})
	colors := make(map[string]struct{})

	for _, item := range items {
		group := item.CategoryGroup
		if group == "" {
			group = item.Category
		}
		groups[group] = struct{}{}

		for _, c := range item.Colors {
			colors[c] = struct{}{}
		}
	}

	return Stats{
		Total:          len(items),
		Groups:         len(groups),
		DistinctColors: len(colors),
	}
}

// FilterByGroup keeps the items belonging to group. GroupAll and "" keep everything.
func FilterByGroup(items []model.WardrobeItem, group string) []model.WardrobeItem {
	if group == "" || group == GroupAll {
		out := make([]model.WardrobeItem, len(items))
		copy(out, items)
		return out
	}

	var out []model.WardrobeItem
	for _, item := range items {
		if CategoryGroupOf(item) == group {
			out = append(out, item)
		}
	}
	return out
}
