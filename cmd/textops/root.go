package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/textops/internal/cli"
	"github.com/aretw0/textops/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "textops",
	Short: "textops is a text-operations plugin",
	Long: `textops exposes six stateless text operations (toUpperCase, toLowerCase,
characterCount, wordCount, reverseText, trimText) to hosts over the command
line, HTTP, the Model Context Protocol or as process tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("locale", "", "BCP 47 language used for case mapping (overrides the config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the config)")
}

// loadConfig reads --config and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, path, err
	}

	if cmd.Flags().Changed("locale") {
		cfg.Locale, _ = cmd.Flags().GetString("locale")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, path, cfg.Validate()
}

// newRuntime loads the configuration and builds the plugin. Logs go to stderr.
func newRuntime(cmd *cobra.Command) (*cli.Runtime, string, error) {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return nil, path, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := cli.NewRuntime(ctx, cfg, cmd.ErrOrStderr())
	return rt, path, err
}
