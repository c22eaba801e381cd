package style

import "github.com/Veraticus/wardrobe/internal/model"

// Category groups used for filter tabs.
const (
	GroupAll         = "all"
	GroupTops        = "tops"
	GroupOuterwear   = "outerwear"
	GroupBottoms     = "bottoms"
	GroupDresses     = "dresses"
	GroupShoes       = "shoes"
	GroupAccessories = "accessories"
	GroupOther       = "other"
)

type categoryInfo struct {
	label string
	group string
}

var categories = map[string]categoryInfo{
	"tshirt":    {label: "T-shirt", group: GroupTops},
	"shirt":     {label: "Shirt", group: GroupTops},
	"sweater":   {label: "Sweater", group: GroupTops},
	"hoodie":    {label: "Hoodie", group: GroupTops},
	"vest":      {label: "Vest", group: GroupTops},
	"coat":      {label: "Coat", group: GroupOuterwear},
	"jacket":    {label: "Jacket", group: GroupOuterwear},
	"blazer":    {label: "Blazer", group: GroupOuterwear},
	"jeans":     {label: "Jeans", group: GroupBottoms},
	"pants":     {label: "Trousers", group: GroupBottoms},
	"shorts":    {label: "Shorts", group: GroupBottoms},
	"skirt":     {label: "Skirt", group: GroupBottoms},
	"dress":     {label: "Dress", group: GroupDresses},
	"suit":      {label: "Suit", group: GroupDresses},
	"shoes":     {label: "Shoes", group: GroupShoes},
	"bag":       {label: "Bags", group: GroupAccessories},
	"accessory": {label: "Accessories", group: GroupAccessories},
	"other":     {label: "Other", group: GroupOther},
}

var groupOrder = []string{
	GroupAll, GroupTops, GroupOuterwear, GroupBottoms,
	GroupDresses, GroupShoes, GroupAccessories, GroupOther,
}

var groupLabels = map[string]string{
	GroupAll:         "All",
	GroupTops:        "Tops",
	GroupOuterwear:   "Outerwear",
	GroupBottoms:     "Bottoms",
	GroupDresses:     "Dresses & suits",
	GroupShoes:       "Shoes",
	GroupAccessories: "Accessories",
	GroupOther:       "Other",
}

// CategoryLabel returns the display label for a clothing-type code, or the code itself.
func CategoryLabel(category string) string {
	if info, ok := categories[category]; ok {
		return info.label
	}
	return category
}

// CategoryGroupOf returns the item's category group, deriving it from the
// category code when the backend did not supply one.
func CategoryGroupOf(item model.WardrobeItem) string {
	if item.CategoryGroup != "" {
		return item.CategoryGroup
	}
	if info, ok := categories[item.Category]; ok {
		return info.group
	}
	return GroupOther
}

// Groups returns the filter tabs in display order, starting with GroupAll.
func Groups() []string {
	out := make([]string, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// GroupLabel returns the tab label for a group, or the group code itself.
func GroupLabel(group string) string {
	if label, ok := groupLabels[group]; ok {
		return label
	}
	return group
}
