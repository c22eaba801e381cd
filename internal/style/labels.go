package style

// Placeholders for attributes that are unset.
const (
	ShapeNotSet        = "Not set"
	SeasonUnrecognized = "Unrecognized"
)

// Canonical body-shape codes.
const (
	ShapeH = "H"
	ShapeA = "A"
	ShapeX = "X"
	ShapeV = "V"
	ShapeO = "O"
)

// Canonical skin-season codes.
const (
	SeasonSpring  = "spring"
	SeasonSummer  = "summer"
	SeasonAutumn  = "autumn"
	SeasonWinter  = "winter"
	SeasonUnknown = "unknown"
)

// ShapeInfo is the display data for a body-shape code.
type ShapeInfo struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Short       string `json:"short"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Known       bool   `json:"known"`
}

// SeasonInfo is the display data for a skin-season code.
type SeasonInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Known bool   `json:"known"`
}

var bodyShapes = []ShapeInfo{
	{Code: ShapeH, Label: "H-shape | Rectangle", Short: "Rectangle", Description: "Shoulders about as wide as hips, waist not defined", Icon: "│", Known: true},
	{Code: ShapeA, Label: "A-shape | Pear", Short: "Pear", Description: "Hips wider than shoulders, fuller lower body", Icon: "△", Known: true},
	{Code: ShapeX, Label: "X-shape | Hourglass", Short: "Hourglass", Description: "Shoulders about as wide as hips, defined waist", Icon: "✕", Known: true},
	{Code: ShapeV, Label: "V-shape | Inverted triangle", Short: "Inverted triangle", Description: "Shoulders wider than hips, fuller upper body", Icon: "▽", Known: true},
	{Code: ShapeO, Label: "O-shape | Apple", Short: "Apple", Description: "Fuller midsection, rounded overall", Icon: "○", Known: true},
}

var skinSeasons = []SeasonInfo{
	{Code: SeasonUnknown, Label: "Unrecognized", Known: true},
	{Code: SeasonSpring, Label: "Spring (warm tones)", Known: true},
	{Code: SeasonSummer, Label: "Summer (cool tones)", Known: true},
	{Code: SeasonAutumn, Label: "Autumn (warm tones)", Known: true},
	{Code: SeasonWinter, Label: "Winter (cool tones)", Known: true},
}

// BodyShapes returns the canonical body shapes in selector order.
func BodyShapes() []ShapeInfo {
	out := make([]ShapeInfo, len(bodyShapes))
	copy(out, bodyShapes)
	return out
}

// SkinSeasons returns the canonical skin seasons in selector order.
func SkinSeasons() []SeasonInfo {
	out := make([]SeasonInfo, len(skinSeasons))
	copy(out, skinSeasons)
	return out
}

// ResolveBodyShape returns display data for code. Unknown codes come back with
// Known=false and the raw code as label; the empty code yields ShapeNotSet.
func ResolveBodyShape(code string) ShapeInfo {
	for _, s := range bodyShapes {
		if s.Code == code {
			return s
		}
	}
	if code == "" {
		return ShapeInfo{Label: ShapeNotSet, Icon: "?"}
	}
	return ShapeInfo{Code: code, Label: code, Short: code, Icon: "?"}
}

// BodyShapeLabel returns the display label for a body-shape code.
func BodyShapeLabel(code string) string {
	return ResolveBodyShape(code).Label
}

// BodyShapeDescription returns the short silhouette description for a code,
// or "" when the code is not one of the canonical five.
func BodyShapeDescription(code string) string {
	return ResolveBodyShape(code).Description
}

// ResolveSkinSeason returns display data for a skin-season code.
func ResolveSkinSeason(code string) SeasonInfo {
	for _, s := range skinSeasons {
		if s.Code == code {
			return s
		}
	}
	if code == "" {
		return SeasonInfo{Label: SeasonUnrecognized}
	}
	return SeasonInfo{Code: code, Label: code}
}

// SkinSeasonLabel returns the display label for a skin-season code.
func SkinSeasonLabel(code string) string {
	return ResolveSkinSeason(code).Label
}
