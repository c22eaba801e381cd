package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
)

const (
	barWidth     = 20
	maxNameWidth = 28
)

// RenderProfile renders the profile card.
func RenderProfile(v viewmodel.ProfileView) string {
	if !v.SignedIn {
		return RenderBox(UserIcon+" Profile", SubtleStyle.Render(v.Placeholder))
	}

	shape := v.ShapeLabel
	if v.ShapeIcon != "" {
		shape = v.ShapeIcon + " " + shape
	}

	rows := [][2]string{
		{"User", v.Username},
		{"Body shape", shape},
		{"", SubtleStyle.Render(v.ShapeDescription)},
		{"Skin season", v.SeasonLabel},
		{"Age", v.Age},
		{"Height", v.Height},
		{"Weight", v.Weight},
	}

	var b strings.Builder
	for _, row := range rows {
		if row[0] == "" && strings.TrimSpace(row[1]) == "" {
			continue
		}
		fmt.Fprintf(&b, "%-12s %s\n", row[0], row[1])
	}
	return RenderBox(UserIcon+" Profile", strings.TrimRight(b.String(), "\n"))
}

// RenderStats renders the wardrobe headline numbers and the category breakdown.
func RenderStats(v viewmodel.WardrobeView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s items  %s categories  %s colours\n",
		BoldStyle.Render(fmt.Sprint(v.Stats.Total)),
		BoldStyle.Render(fmt.Sprint(v.Stats.Groups)),
		BoldStyle.Render(fmt.Sprint(v.Stats.DistinctColors)))

	if v.Summary.TopCategory != nil {
		fmt.Fprintf(&b, "Most owned: %s (%d)\n",
			style.CategoryLabel(v.Summary.TopCategory.Name), v.Summary.TopCategory.Count)
	}

	for _, c := range v.Summary.Categories {
		fmt.Fprintf(&b, "  %-14s %d\n", style.CategoryLabel(c.Name), c.Count)
	}
	return RenderBox("Wardrobe overview", strings.TrimRight(b.String(), "\n"))
}

// RenderWardrobe renders the group tabs and the item list.
func RenderWardrobe(v viewmodel.WardrobeView) string {
	var b strings.Builder

	tabs := make([]string, 0, len(v.Tabs))
	for _, tab := range v.Tabs {
		label := fmt.Sprintf("%s (%d)", tab.Label, tab.Count)
		if tab.Active {
			label = PromptStyle.Render("[" + label + "]")
		} else {
			label = SubtleStyle.Render(label)
		}
		tabs = append(tabs, label)
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if v.Placeholder != "" {
		b.WriteString(SubtleStyle.Render(v.Placeholder))
		return FormatTitle("Wardrobe") + "\n" + b.String()
	}

	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-6s %-*s %-12s %s", "ID", maxNameWidth, "Name", "Type", "Colours")))
	b.WriteString("\n")
	for _, item := range v.Items {
		swatches := make([]string, 0, len(item.Swatches))
		for _, sw := range item.Swatches {
			swatches = append(swatches, Swatch(sw.Hex))
		}
		fmt.Fprintf(&b, "%-6d %-*s %-12s %s\n",
			item.ID,
			maxNameWidth, viewmodel.TruncateString(item.Name, maxNameWidth),
			item.CategoryLabel,
			strings.Join(swatches, ""))
	}
	return FormatTitle("Wardrobe") + "\n" + strings.TrimRight(b.String(), "\n")
}

// RenderTips renders style tips as boxes.
func RenderTips(tips []style.Tip) string {
	boxes := make([]string, 0, len(tips))
	for _, tip := range tips {
		content := tip.Content
		if len(tip.Colors) > 0 {
			chips := make([]string, 0, len(tip.Colors))
			for _, c := range tip.Colors {
				chips = append(chips, Swatch(c))
			}
			content += "\n" + strings.Join(chips, " ")
		}
		boxes = append(boxes, RenderBox(TipIcon+" "+tip.Title, content))
	}
	return strings.Join(boxes, "\n")
}

// RenderRecommendations renders scored recommendation cards.
func RenderRecommendations(r style.Recommendations) string {
	if r.IsEmpty() {
		return FormatInfo(r.Placeholder)
	}

	cards := make([]string, 0, len(r.Cards))
	for _, card := range r.Cards {
		var b strings.Builder
		for _, line := range card.Scores {
			fmt.Fprintf(&b, "%-12s %s %3d%%\n",
				line.Label,
				BarStyle.Render(viewmodel.ScoreBar(line.Fraction, barWidth)),
				line.Percent)
		}
		title := fmt.Sprintf("%s %s  %s", StarIcon, card.TotalLabel, card.ItemName)
		cards = append(cards, RenderBox(title, strings.TrimRight(b.String(), "\n")))
	}
	return strings.Join(cards, "\n")
}

// RenderOutfits renders the outfit listing.
func RenderOutfits(o style.Outfits) string {
	if len(o.Cards) == 0 {
		return FormatInfo(o.Placeholder)
	}

	cards := make([]string, 0, len(o.Cards))
	for _, card := range o.Cards {
		var b strings.Builder
		for _, item := range card.Items {
			fmt.Fprintf(&b, "• %s\n", item.Name)
		}
		fmt.Fprintf(&b, "Match: %d%%", card.Percent)
		if card.Occasion != "" {
			fmt.Fprintf(&b, "  %s", SubtleStyle.Render(card.Occasion))
		}
		cards = append(cards, RenderBox(card.Name, b.String()))
	}
	return strings.Join(cards, "\n")
}

// RenderShowcase renders the highlighted item cards.
func RenderShowcase(cards []style.ShowcaseCard) string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, RenderBox(c.Category+" · "+c.Name, c.Description))
	}
	return strings.Join(out, "\n")
}

// RenderUploadSummary renders the confirmation after an upload.
func RenderUploadSummary(s viewmodel.UploadSummary) string {
	lines := s.Lines()
	lines[0] = FormatSuccess(lines[0])
	return strings.Join(lines, "\n")
}

// RenderDashboard renders every section of the dashboard in page order.
func RenderDashboard(d viewmodel.Dashboard) string {
	sections := []string{
		RenderProfile(d.Profile),
		RenderStats(d.Wardrobe),
		RenderWardrobe(d.Wardrobe),
		FormatTitle("Style tips") + "\n" + RenderTips(d.Tips),
		FormatTitle("Recommendations") + "\n" + RenderRecommendations(d.Recommendations),
		FormatTitle("Outfits") + "\n" + RenderOutfits(d.Outfits),
		FormatTitle("Highlights") + "\n" + RenderShowcase(d.Showcase),
	}
	return strings.Join(sections, "\n\n")
}
