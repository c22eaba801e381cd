package main

import (
	"fmt"
	"log/slog"
	"net"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/wardrobe/internal/certs"
	"github.com/Veraticus/wardrobe/internal/config"
	"github.com/Veraticus/wardrobe/internal/webview"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as JSON for a local web front end",
		Long: `Serve the dashboard view models as JSON.

With --tls a self-signed certificate for localhost (and the listen host) is
kept under the config directory and the view is served over HTTPS.`,
		RunE: runWithApp(func(cmd *cobra.Command, _ []string, a *app) error {
			useTLS, _ := cmd.Flags().GetBool("tls")

			var opts []webview.ServerOption
			if useTLS {
				host, _, err := net.SplitHostPort(a.settings.WebAddr)
				if err != nil {
					return fmt.Errorf("invalid listen address %q: %w", a.settings.WebAddr, err)
				}
				tlsConfig, err := certs.NewManager(filepath.Join(config.ConfigDir(), "certs"), host).TLSConfig()
				if err != nil {
					return fmt.Errorf("failed to prepare TLS certificate: %w", err)
				}
				opts = append(opts, webview.WithTLS(tlsConfig))
			}

			if err := a.controller.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			return webview.NewServer(a.settings.WebAddr, a.controller, slog.Default(), opts...).Run(cmd.Context())
		}),
	}

	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().Bool("tls", false, "serve HTTPS with a self-signed localhost certificate")
	_ = viper.BindPFlag(config.KeyWebAddr, cmd.Flags().Lookup("addr"))

	return cmd
}
