package viewmodel

import (
	"fmt"

	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/style"
)

// UploadSummary is the confirmation shown after an image upload.
type UploadSummary struct {
	Item          ItemCard `json:"item"`
	CategoryLabel string   `json:"category_label"`
	Confidence    string   `json:"confidence"`
	Colors        int      `json:"colors"`
	// ShowConfidence is set only for classifier results.
	ShowConfidence bool `json:"show_confidence"`
}

// NewUploadSummary prepares the confirmation for result.
func NewUploadSummary(result model.UploadResult) UploadSummary {
	category := result.Item.Category
	if category == "" {
		category = result.Classification.Category
	}

	s := UploadSummary{
		Item:          NewItemCard(result.Item),
		CategoryLabel: style.CategoryLabel(category),
		Colors:        len(result.Item.Palette),
	}
	if result.Classification.Method == model.ClassificationMethodDeepLearning {
		s.ShowConfidence = true
		s.Confidence = fmt.Sprintf("%.1f%%", style.ClampFraction(result.Classification.Confidence)*100)
	}
	return s
}

// Lines returns the confirmation as display lines.
func (s UploadSummary) Lines() []string {
	lines := []string{"Uploaded! Recognized as: " + s.CategoryLabel}
	if s.ShowConfidence {
		lines = append(lines, "Confidence: "+s.Confidence)
	}
	return append(lines, fmt.Sprintf("Extracted %d colours", s.Colors))
}
