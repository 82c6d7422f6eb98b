package main

import (
	"context"
	"net"

	"github.com/aretw0/textops"
	"github.com/aretw0/textops/internal/cli"
	"github.com/aretw0/textops/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the operations as a JSON API over HTTP. The configuration file is
watched: locale and log level changes apply without a restart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, path, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		addr := rt.Config.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		tui.PrintBanner(cmd.ErrOrStderr(), textops.Version)

		watcher, err := cli.WatchConfig(rt, path)
		if err != nil {
			return err
		}
		if watcher != nil {
			defer watcher.Close()
		}

		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		err = cli.Serve(sigCtx, rt, ln)
		if sig := sigCtx.Signal(); sig != nil {
			rt.Logger.Info("stopped by signal", "signal", sig.String())
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default from config, :8080)")
}
