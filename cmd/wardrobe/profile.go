package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Veraticus/wardrobe/internal/cli"
	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your style profile",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.controller.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderProfile(a.controller.Dashboard(style.GroupAll).Profile))
			return nil
		}),
	}

	cmd.AddCommand(profileUpdateCmd())

	return cmd
}

func profileUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your style profile",
		Long: fmt.Sprintf(`Update one or more profile attributes. Unset flags are left unchanged.

Body shapes: %s
Skin seasons: %s`,
			strings.Join(shapeCodes(), ", "),
			strings.Join(seasonCodes(), ", ")),
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			update, err := profileUpdateFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			if update.IsEmpty() {
				return fmt.Errorf("nothing to update: pass at least one of --age, --height, --weight, --body-shape, --skin-season")
			}

			if err := a.refreshed(cmd.Context()); err != nil {
				return err
			}

			user, err := a.controller.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Profile updated"))
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderProfile(viewmodel.NewProfileView(user)))
			return nil
		}),
	}

	cmd.Flags().Int("age", 0, "age in years (10-100)")
	cmd.Flags().Int("height", 0, "height in cm")
	cmd.Flags().Int("weight", 0, "weight in kg")
	cmd.Flags().String("body-shape", "", "body shape code")
	cmd.Flags().String("skin-season", "", "skin season code")

	return cmd
}

func shapeCodes() []string {
	shapes := style.BodyShapes()
	codes := make([]string, 0, len(shapes))
	for _, s := range shapes {
		codes = append(codes, s.Code)
	}
	return codes
}

func seasonCodes() []string {
	seasons := style.SkinSeasons()
	codes := make([]string, 0, len(seasons))
	for _, s := range seasons {
		codes = append(codes, s.Code)
	}
	return codes
}

// profileUpdateFromFlags sets only the fields whose flags were given.
func profileUpdateFromFlags(flags *pflag.FlagSet) (model.ProfileUpdate, error) {
	var update model.ProfileUpdate

	intField := func(name string) (*int, error) {
		if !flags.Changed(name) {
			return nil, nil
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	stringField := func(name string, normalize func(string) string) (*string, error) {
		if !flags.Changed(name) {
			return nil, nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return nil, err
		}
		v = normalize(strings.TrimSpace(v))
		return &v, nil
	}

	var err error
	if update.Age, err = intField("age"); err != nil {
		return update, err
	}
	if update.Height, err = intField("height"); err != nil {
		return update, err
	}
	if update.Weight, err = intField("weight"); err != nil {
		return update, err
	}
	if update.BodyShape, err = stringField("body-shape", strings.ToUpper); err != nil {
		return update, err
	}
	if update.SkinSeason, err = stringField("skin-season", strings.ToLower); err != nil {
		return update, err
	}
	return update, nil
}
