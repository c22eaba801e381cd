package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/wardrobe/internal/cli"
	"github.com/Veraticus/wardrobe/internal/style"
)

func tipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show style tips for your profile",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.controller.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTips(a.controller.Dashboard(style.GroupAll).Tips))
			return nil
		}),
	}
}
