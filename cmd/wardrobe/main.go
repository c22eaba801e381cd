package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/wardrobe/internal/cli"
	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/config"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "wardrobe",
		Short: "👗 Your wardrobe and outfit recommendations in the terminal",
		Long: `wardrobe: a terminal client for the wardrobe recommendation service.

Log in, keep your style profile up to date, upload clothes and ask the
service for today's outfit ideas.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/wardrobe/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "backend base URL")
	rootCmd.PersistentFlags().String("session", "", "session database path")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyServerURL, rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag(config.KeySessionPath, rootCmd.PersistentFlags().Lookup("session"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(wardrobeCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(tipsCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// WARDROBE_SERVER_URL overrides server.url and so on.
	viper.SetEnvPrefix("WARDROBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := common.SetupLogger(os.Stderr, viper.GetString(config.KeyLogLevel), viper.GetString(config.KeyLogFormat)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wardrobe %s\n", version)
		},
	}
}
