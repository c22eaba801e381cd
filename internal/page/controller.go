// Package page owns the client's view state and the operations that change it.
package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/wardrobe/internal/api"
	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/service"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
)

// ErrLoginRequired is returned by operations that need a signed-in user.
var ErrLoginRequired = errors.New("login required")

// Snapshot is the state the views are derived from. It is replaced wholesale.
type Snapshot struct {
	LoadedAt        time.Time
	User            *model.UserProfile
	Wardrobe        []model.WardrobeItem
	Recommendations []model.RecommendationResult
	Outfits         []model.Outfit
}

// SignedIn reports whether the snapshot has a user.
func (s Snapshot) SignedIn() bool {
	return s.User != nil
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Wardrobe = append([]model.WardrobeItem(nil), s.Wardrobe...)
	out.Recommendations = append([]model.RecommendationResult(nil), s.Recommendations...)
	out.Outfits = append([]model.Outfit(nil), s.Outfits...)
	return out
}

// Controller serializes page operations against the backend and keeps the latest snapshot.
type Controller struct {
	backend  service.Backend
	logger   *slog.Logger
	now      func() time.Time
	snapshot Snapshot
	mu       sync.RWMutex
}

// NewController creates a controller with an empty, signed-out snapshot.
func NewController(backend service.Backend, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.clone()
}

func (c *Controller) replace(s Snapshot) {
	s.LoadedAt = c.now()
	c.mu.Lock()
	c.snapshot = s
	c.mu.Unlock()
}

func (c *Controller) update(fn func(s *Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.snapshot.clone()
	fn(&next)
	next.LoadedAt = c.now()
	c.snapshot = next
}

// Dashboard derives every view from the current snapshot.
func (c *Controller) Dashboard(group string) viewmodel.Dashboard {
	s := c.Snapshot()
	return viewmodel.NewDashboard(viewmodel.Input{
		LoadedAt:        s.LoadedAt,
		User:            s.User,
		Group:           group,
		Wardrobe:        s.Wardrobe,
		Recommendations: s.Recommendations,
		Outfits:         s.Outfits,
	})
}

// Refresh reloads the profile and, when signed in, the wardrobe and outfits.
// Wardrobe and outfit failures degrade to empty lists; a profile failure resets
// the snapshot and is returned.
func (c *Controller) Refresh(ctx context.Context) error {
	user, err := c.backend.CurrentUser(ctx)
	if err != nil {
		c.replace(Snapshot{})
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if user == nil {
		c.replace(Snapshot{})
		return nil
	}

	next := Snapshot{User: user}
	c.loadCollections(ctx, &next)

	// Generated recommendations are only ever returned by POST, so they survive a refresh.
	c.mu.RLock()
	if c.snapshot.User != nil && c.snapshot.User.Username == user.Username {
		next.Recommendations = append([]model.RecommendationResult(nil), c.snapshot.Recommendations...)
	}
	c.mu.RUnlock()

	c.replace(next)
	return nil
}

// loadCollections fills the wardrobe and outfits concurrently. Each fetch
// degrades to an empty list on its own, so one failing never cancels the other
// and the group only joins them.
func (c *Controller) loadCollections(ctx context.Context, s *Snapshot) {
	var (
		items   []model.WardrobeItem
		outfits []model.Outfit
		g       errgroup.Group
	)

	g.Go(func() error {
		var err error
		items, err = c.backend.ListWardrobe(ctx)
		if err != nil {
			c.logger.Warn("wardrobe unavailable, showing empty list", "error", err)
			items = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		outfits, err = c.backend.ListOutfits(ctx)
		if err != nil {
			c.logger.Warn("outfits unavailable, showing empty list", "error", err)
			outfits = nil
		}
		return nil
	})
	_ = g.Wait()

	s.Wardrobe = nonNilItems(items)
	s.Outfits = nonNilOutfits(outfits)
}

// Login signs in and loads the new user's data.
func (c *Controller) Login(ctx context.Context, username, password string) (*model.UserProfile, error) {
	user, err := c.backend.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	next := Snapshot{User: user}
	c.loadCollections(ctx, &next)
	c.replace(next)

	u := *user
	return &u, nil
}

// Logout ends the session. Local state is cleared even when the backend call fails.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.backend.Logout(ctx)
	c.replace(Snapshot{})
	if err != nil {
		c.logger.Warn("logout request failed, local session cleared", "error", err)
		return err
	}
	return nil
}

// GenerateRecommendations asks the backend for fresh results and stores them.
func (c *Controller) GenerateRecommendations(ctx context.Context) ([]model.RecommendationResult, error) {
	if !c.Snapshot().SignedIn() {
		return nil, ErrLoginRequired
	}

	results, err := c.backend.GenerateRecommendations(ctx)
	if err != nil {
		if errors.Is(err, api.ErrAuthRequired) {
			c.replace(Snapshot{})
			return nil, fmt.Errorf("%w: %w", ErrLoginRequired, err)
		}
		return nil, err
	}

	c.update(func(s *Snapshot) {
		s.Recommendations = append([]model.RecommendationResult(nil), results...)
	})
	return results, nil
}

// UpdateProfile validates and sends a profile edit, then stores the resulting profile.
func (c *Controller) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.UserProfile, error) {
	current := c.Snapshot().User
	if current == nil {
		return nil, ErrLoginRequired
	}
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	if update.IsEmpty() {
		return current, nil
	}

	user, err := c.backend.UpdateProfile(ctx, update)
	if err != nil {
		if errors.Is(err, api.ErrAuthRequired) {
			c.replace(Snapshot{})
			return nil, fmt.Errorf("%w: %w", ErrLoginRequired, err)
		}
		return nil, err
	}
	if user == nil {
		applied := update.Apply(*current)
		user = &applied
	}

	c.update(func(s *Snapshot) {
		u := *user
		s.User = &u
	})
	return user, nil
}

// UploadItem uploads an image and reloads the wardrobe.
func (c *Controller) UploadItem(ctx context.Context, upload model.Upload) (*model.UploadResult, error) {
	if !c.Snapshot().SignedIn() {
		return nil, ErrLoginRequired
	}

	result, err := c.backend.UploadItem(ctx, upload)
	if err != nil {
		return nil, err
	}

	c.reloadWardrobe(ctx)
	return result, nil
}

// DeleteItem removes an item and reloads the wardrobe.
func (c *Controller) DeleteItem(ctx context.Context, id int64) error {
	if !c.Snapshot().SignedIn() {
		return ErrLoginRequired
	}

	if err := c.backend.DeleteItem(ctx, id); err != nil {
		return err
	}

	c.reloadWardrobe(ctx)
	return nil
}

func (c *Controller) reloadWardrobe(ctx context.Context) {
	items, err := c.backend.ListWardrobe(ctx)
	if err != nil {
		c.logger.Warn("failed to reload wardrobe", "error", err)
		return
	}
	c.update(func(s *Snapshot) {
		s.Wardrobe = nonNilItems(items)
	})
}

func nonNilItems(items []model.WardrobeItem) []model.WardrobeItem {
	if items == nil {
		return []model.WardrobeItem{}
	}
	return items
}

func nonNilOutfits(outfits []model.Outfit) []model.Outfit {
	if outfits == nil {
		return []model.Outfit{}
	}
	return outfits
}
