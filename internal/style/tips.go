package style

import "github.com/Veraticus/wardrobe/internal/model"

// TipKind identifies which rule produced a tip.
type TipKind string

const (
	// TipKindLogin is the single tip shown when nobody is signed in.
	TipKindLogin TipKind = "login"
	// TipKindSeason carries colour guidance for the skin season.
	TipKindSeason TipKind = "season"
	// TipKindShape carries styling guidance for the body shape.
	TipKindShape TipKind = "shape"
	// TipKindFabric is the generic fabric-mixing tip.
	TipKindFabric TipKind = "fabric"
)

// Tip is one piece of style advice.
type Tip struct {
	Kind    TipKind  `json:"kind"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Colors  []string `json:"colors"`
	// Fallback is set when the shape code had no entry and generic advice was used.
	Fallback bool `json:"fallback"`
}

// Titles shown on tip cards.
const (
	TitleLogin  = "Personalized advice"
	TitleSeason = "Colour advice"
	TitleShape  = "Body-shape styling"
	TitleFabric = "Fabric advice"
)

type seasonTip struct {
	content string
	colors  []string
}

// "unknown" has no colour guidance on purpose.
var seasonTips = map[string]seasonTip{
	SeasonSpring: {
		content: "Pick warm beiges, camel and coral orange to keep the whole look light.",
		colors:  []string{"#FFD700", "#FF7F50", "#90EE90", "#F5DEB3"},
	},
	SeasonSummer: {
		content: "Build around cool mint green and haze blue, in light breathable fabrics.",
		colors:  []string{"#B0E0E6", "#E6E6FA", "#98FB98", "#C0C0C0"},
	},
	SeasonAutumn: {
		content: "Caramel brown and burgundy set the autumn mood; pair them with wool and corduroy textures.",
		colors:  []string{"#808000", "#D2691E", "#CD5C5C", "#DAA520"},
	},
	SeasonWinter: {
		content: "Combine black, white and grey with sapphire blue or deep purple for a sharp winter contrast.",
		colors:  []string{"#FFFFFF", "#0047AB", "#8B0000", "#000000"},
	},
}

// Codes outside this table, including "V" and the legacy "T", get shapeFallback.
var shapeTips = map[string]string{
	ShapeA: "Draw the eye upward with structured jackets and shoulder details.",
	ShapeH: "Use a belt or a high waistline to create proportion, balancing ease and polish.",
	ShapeX: "Highlight the waist with fitted cuts and soft fabrics.",
	ShapeO: "Choose fabrics that drape for a smooth line and avoid anything too clingy.",
}

const (
	shapeFallback = "Choose flowing fabrics and a clear waistline."
	fabricAdvice  = "Mix natural materials (cotton, wool, silk) with technical fabrics for comfort and style."
	loginAdvice   = "Log in to get personalized style advice."
)

// GenerateTips returns style advice for profile in display order: season tip,
// shape tip, then the generic fabric tip. A nil profile yields only the login tip.
func GenerateTips(profile *model.UserProfile) []Tip {
	if profile == nil {
		return []Tip{{Kind: TipKindLogin, Title: TitleLogin, Content: loginAdvice}}
	}

	tips := make([]Tip, 0, 3)

	if st, ok := seasonTips[profile.SkinSeason]; ok {
		tips = append(tips, Tip{
			Kind:    TipKindSeason,
			Title:   TitleSeason,
			Content: st.content,
			Colors:  append([]string(nil), st.colors...),
		})
	}

	if profile.BodyShape != "" {
		tips = append(tips, shapeTip(profile.BodyShape))
	}

	tips = append(tips, Tip{Kind: TipKindFabric, Title: TitleFabric, Content: fabricAdvice})

	return tips
}

func shapeTip(code string) Tip {
	content, ok := shapeTips[code]
	if !ok {
		return Tip{Kind: TipKindShape, Title: TitleShape, Content: shapeFallback, Fallback: true}
	}
	return Tip{Kind: TipKindShape, Title: TitleShape, Content: content}
}
