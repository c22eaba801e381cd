package model

import (
	"bytes"
	"encoding/json"
)

// Score is a producer-supplied number that may be missing or malformed.
// Decoding never fails: anything that is not a JSON number leaves the score absent.
type Score struct {
	Value float64
	Valid bool
}

// NewScore returns a present score.
func NewScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

// Or returns the value when present and def otherwise.
func (s Score) Or(def float64) float64 {
	if !s.Valid {
		return def
	}
	return s.Value
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Score) UnmarshalJSON(data []byte) error {
	*s = Score{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '"' || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil //nolint:nilerr // malformed scores are treated as absent
	}
	*s = Score{Value: v, Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// RecommendationResult is a server-scored pairing of a wardrobe item with sub-scores.
type RecommendationResult struct {
	Item       WardrobeItem `json:"item"`
	TotalScore Score        `json:"total_score"`
	ColorScore Score        `json:"color_score"`
	BodyScore  Score        `json:"body_score"`
	AgeScore   Score        `json:"age_score"`
}

// Outfit is a server-composed set of items suggested to be worn together.
type Outfit struct {
	Name     string         `json:"name"`
	Occasion string         `json:"occasion,omitempty"`
	Items    []WardrobeItem `json:"items,omitempty"`
	Score    Score          `json:"score"`
}
