package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/wardrobe/internal/api"
	"github.com/Veraticus/wardrobe/internal/cli"
	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
)

func wardrobeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wardrobe",
		Aliases: []string{"w"},
		Short:   "Manage the clothes in your wardrobe",
	}

	cmd.AddCommand(wardrobeListCmd())
	cmd.AddCommand(wardrobeStatsCmd())
	cmd.AddCommand(wardrobeUploadCmd())
	cmd.AddCommand(wardrobeDeleteCmd())
	cmd.AddCommand(wardrobeShowcaseCmd())

	return cmd
}

func wardrobeListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wardrobe items",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			group, _ := cmd.Flags().GetString("group")
			if err := a.refreshed(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderWardrobe(a.controller.Dashboard(group).Wardrobe))
			return nil
		}),
	}

	cmd.Flags().StringP("group", "g", style.GroupAll, "only show one category group")

	return cmd
}

func wardrobeStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the wardrobe",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.refreshed(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderStats(a.controller.Dashboard(style.GroupAll).Wardrobe))
			return nil
		}),
	}
}

func wardrobeUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <image>",
		Short: "Upload a photo of a clothing item",
		Long: `Upload a photo. The service recognizes the clothing type and extracts
its colours. Images must be at most 10 MB.`,
		Args: cobra.ExactArgs(1),
		RunE: runWithApp(func(cmd *cobra.Command, args []string, a *app) error {
			path := args[0]
			name, _ := cmd.Flags().GetString("name")
			quiet, _ := cmd.Flags().GetBool("quiet")

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}
			if info.Size() > api.MaxUploadSize {
				return common.NewUserError("Image is larger than 10 MB", common.ErrFileTooLarge)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			if err := a.refreshed(cmd.Context()); err != nil {
				return err
			}

			upload := model.Upload{
				Name:     name,
				FileName: filepath.Base(path),
				Content:  bytes.NewReader(data),
			}
			if !quiet {
				upload.Progress = cli.NewUploadProgress(cmd.ErrOrStderr(), api.UploadSize(upload, data), upload.DisplayName())
			}

			result, err := a.controller.UploadItem(cmd.Context(), upload)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderUploadSummary(viewmodel.NewUploadSummary(*result)))
			return nil
		}),
	}

	cmd.Flags().StringP("name", "n", "", "item name (default: file name)")
	cmd.Flags().BoolP("quiet", "q", false, "hide the progress bar")

	return cmd
}

func wardrobeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an item from the wardrobe",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			if err := a.refreshed(cmd.Context()); err != nil {
				return err
			}
			if err := a.controller.DeleteItem(cmd.Context(), id); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("No item with id %d", id), err)
				}
				return fmt.Errorf("failed to delete item %d: %w", id, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted item %d", id)))
			return nil
		}),
	}
}

func wardrobeShowcaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "showcase",
		Short: "Show highlighted pieces",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.controller.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderShowcase(a.controller.Dashboard(style.GroupAll).Showcase))
			return nil
		}),
	}
}
