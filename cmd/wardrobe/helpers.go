package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/wardrobe/internal/api"
	"github.com/Veraticus/wardrobe/internal/config"
	"github.com/Veraticus/wardrobe/internal/page"
	"github.com/Veraticus/wardrobe/internal/session"
)

// app bundles everything a command needs to talk to the backend.
type app struct {
	settings   *config.Settings
	store      *session.Store
	client     *api.Client
	controller *page.Controller
}

// newApp loads settings, opens the session database and restores the saved session.
func newApp(ctx context.Context) (*app, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	store, err := session.Open(ctx, settings.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	client, err := api.New(settings.ServerURL,
		api.WithTimeout(settings.Timeout),
		api.WithSessionStore(store),
		api.WithLogger(slog.Default()),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	if err := client.RestoreSession(ctx); err != nil {
		slog.Warn("Failed to restore saved session", "error", err)
	}

	return &app{
		settings:   settings,
		store:      store,
		client:     client,
		controller: page.NewController(client, slog.Default()),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// runWithApp wraps a command body with app setup and teardown.
func runWithApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := a.Close(); closeErr != nil {
				slog.Warn("Failed to close session store", "error", closeErr)
			}
		}()
		return fn(cmd, args, a)
	}
}

// refreshed reloads the snapshot and fails when nobody is signed in.
func (a *app) refreshed(ctx context.Context) error {
	if err := a.controller.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if !a.controller.Snapshot().SignedIn() {
		return notSignedIn()
	}
	return nil
}
