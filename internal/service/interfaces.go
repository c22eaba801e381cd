// Package service defines the interfaces shared between the client layers.
package service

import (
	"context"
	"net/http"
	"time"

	"github.com/Veraticus/wardrobe/internal/model"
)

// Backend defines the contract for the remote wardrobe service.
type Backend interface {
	// Authentication
	Login(ctx context.Context, username, password string) (*model.UserProfile, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.UserProfile, error)

	// Profile
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.UserProfile, error)

	// Wardrobe
	ListWardrobe(ctx context.Context) ([]model.WardrobeItem, error)
	UploadItem(ctx context.Context, upload model.Upload) (*model.UploadResult, error)
	DeleteItem(ctx context.Context, id int64) error

	// Recommendations
	GenerateRecommendations(ctx context.Context) ([]model.RecommendationResult, error)
	ListOutfits(ctx context.Context) ([]model.Outfit, error)
}

// SessionStore persists backend session cookies between invocations.
type SessionStore interface {
	Save(ctx context.Context, host string, cookies []*http.Cookie) error
	Load(ctx context.Context, host string) ([]*http.Cookie, error)
	Clear(ctx context.Context, host string) error
	Close() error
}

// RetryOptions configures retry behavior.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryOptions returns the retry policy used for idempotent requests.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
	}
}
