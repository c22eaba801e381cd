package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Veraticus/wardrobe/internal/model"
)

// ListWardrobe returns every item in the signed-in user's wardrobe.
func (c *Client) ListWardrobe(ctx context.Context) ([]model.WardrobeItem, error) {
	env, err := c.get(ctx, "/api/wardrobe")
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe: %w", err)
	}

	var data itemsData[model.WardrobeItem]
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	if data.Items == nil {
		return []model.WardrobeItem{}, nil
	}
	return data.Items, nil
}

// DeleteItem removes one wardrobe item.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	if _, err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/wardrobe/%d", id), nil); err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}

// GenerateRecommendations asks the backend to score the wardrobe against the profile.
func (c *Client) GenerateRecommendations(ctx context.Context) ([]model.RecommendationResult, error) {
	env, err := c.send(ctx, http.MethodPost, "/api/recommendations", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	var data resultsData[model.RecommendationResult]
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	if data.Results == nil {
		return []model.RecommendationResult{}, nil
	}
	return data.Results, nil
}

// ListOutfits returns the outfits the backend has composed for the user.
// The list is read from the top-level recommendations field, falling back to data.
func (c *Client) ListOutfits(ctx context.Context) ([]model.Outfit, error) {
	env, err := c.get(ctx, "/api/recommendations")
	if err != nil {
		return nil, fmt.Errorf("failed to load outfits: %w", err)
	}

	var outfits []model.Outfit
	if len(env.Recommendations) > 0 && string(env.Recommendations) != "null" {
		if err := json.Unmarshal(env.Recommendations, &outfits); err != nil {
			return nil, fmt.Errorf("failed to decode outfits: %w", err)
		}
	} else {
		var data outfitsData[model.Outfit]
		if err := env.decodeData(&data); err != nil {
			return nil, err
		}
		outfits = data.Recommendations
	}

	if outfits == nil {
		return []model.Outfit{}, nil
	}
	return outfits, nil
}
