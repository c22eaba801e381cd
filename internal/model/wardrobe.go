package model

import (
	"io"
	"path/filepath"
	"strings"
)

// Swatch is one extracted colour of a wardrobe item.
type Swatch struct {
	Hex   string  `json:"hex"`
	Ratio float64 `json:"ratio,omitempty"`
}

// WardrobeItem is a single piece of clothing owned by the user.
type WardrobeItem struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	CategoryGroup string   `json:"category_group,omitempty"`
	MainColorHex  string   `json:"main_color_hex,omitempty"`
	Silhouette    string   `json:"silhouette,omitempty"`
	Season        string   `json:"season,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Palette       []Swatch `json:"palette,omitempty"`
	ID            int64    `json:"id"`
}

// ItemClassification describes how the backend recognized an uploaded image.
type ItemClassification struct {
	Category   string  `json:"category"`
	Method     string  `json:"method"`
	Confidence float64 `json:"confidence"`
}

// ClassificationMethodDeepLearning marks results produced by the image classifier.
const ClassificationMethodDeepLearning = "deep_learning"

// UploadResult is the backend's answer to an image upload.
type UploadResult struct {
	Item           WardrobeItem       `json:"item"`
	Classification ItemClassification `json:"classification"`
}

// Upload describes an image to add to the wardrobe.
type Upload struct {
	// Content is read fully before sending so its size and type can be checked.
	Content io.Reader
	// Progress, when set, receives the bytes of the request body as they are sent.
	Progress io.Writer
	Name     string
	FileName string
}

// DisplayName returns the item name, or the file name without its extension.
func (u Upload) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	base := filepath.Base(u.FileName)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
