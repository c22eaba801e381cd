package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/wardrobe/internal/api"
	"github.com/Veraticus/wardrobe/internal/cli"
	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Log in and out of the wardrobe service",
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authWhoamiCmd())

	return cmd
}

func notSignedIn() error {
	return common.NewUserError(viewmodel.SignedOutProfile, api.ErrAuthRequired)
}

func authLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Long: `Log in to the wardrobe service.

The password is read without echo from the terminal, or from standard input
with --password-stdin. The session cookie is saved so later commands stay
signed in.`,
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			username, _ := cmd.Flags().GetString("username")
			fromStdin, _ := cmd.Flags().GetBool("password-stdin")

			var prompter *cli.CredentialPrompter
			if fromStdin {
				prompter = cli.NewCredentialPrompterFromReader(cmd.InOrStdin(), cmd.ErrOrStderr())
			} else {
				prompter = cli.NewCredentialPrompter(os.Stdin, cmd.ErrOrStderr())
			}

			creds, err := prompter.Prompt(cmd.Context(), username)
			if err != nil {
				return err
			}

			user, err := a.controller.Login(cmd.Context(), creds.Username, creds.Password)
			if err != nil {
				var apiErr *api.APIError
				if errors.As(err, &apiErr) {
					return common.NewUserError(apiErr.Message, err)
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Logged in as "+user.Username))
			return nil
		}),
	}

	cmd.Flags().StringP("username", "u", "", "username (prompted when empty)")
	cmd.Flags().Bool("password-stdin", false, "read the password from standard input")

	return cmd
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the saved session",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.controller.Logout(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("Server logout failed, local session cleared anyway"))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Logged out"))
			return nil
		}),
	}
}

func authWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who is signed in",
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.controller.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			s := a.controller.Snapshot()
			if !s.SignedIn() {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Not signed in"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.User.Username)
			return nil
		}),
	}
}
