package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/wardrobe/internal/cli"
	"github.com/Veraticus/wardrobe/internal/config"
	"github.com/Veraticus/wardrobe/internal/tui"
	"github.com/Veraticus/wardrobe/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: fmt.Sprintf(`Open a full-screen dashboard with your profile, wardrobe,
recommendations and tips.

Themes: %s`, strings.Join(themes.Names(), ", ")),
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			group, _ := cmd.Flags().GetString("group")
			plain, _ := cmd.Flags().GetBool("plain")

			if plain {
				if err := a.controller.Refresh(cmd.Context()); err != nil {
					return fmt.Errorf("failed to load profile: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.RenderDashboard(a.controller.Dashboard(group)))
				return nil
			}

			theme, ok := themes.ByName(a.settings.Theme)
			if !ok {
				slog.Warn("Unknown theme, using default", "theme", a.settings.Theme)
				theme = themes.Default
			}

			return tui.Run(cmd.Context(), a.controller,
				tui.WithTheme(theme),
				tui.WithGroup(group),
				tui.WithRequestTimeout(a.settings.Timeout),
			)
		}),
	}

	cmd.Flags().String("theme", "", "colour theme")
	cmd.Flags().StringP("group", "g", "", "initial wardrobe group filter")
	cmd.Flags().Bool("plain", false, "print every section once instead of opening the dashboard")
	_ = viper.BindPFlag(config.KeyUITheme, cmd.Flags().Lookup("theme"))

	return cmd
}
