package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/wardrobe/internal/cli"
	"github.com/Veraticus/wardrobe/internal/page"
	"github.com/Veraticus/wardrobe/internal/style"
)

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate today's outfit recommendations",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.controller.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}

			results, err := a.controller.GenerateRecommendations(cmd.Context())
			if err != nil {
				if errors.Is(err, page.ErrLoginRequired) {
					return notSignedIn()
				}
				return fmt.Errorf("failed to generate recommendations: %w", err)
			}

			recs := style.NormalizeResults(results)
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderRecommendations(recs))
			return nil
		}),
	}

	cmd.AddCommand(recommendOutfitsCmd())

	return cmd
}

func recommendOutfitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outfits",
		Short: "List suggested outfits",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.refreshed(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderOutfits(a.controller.Dashboard(style.GroupAll).Outfits))
			return nil
		}),
	}
}
