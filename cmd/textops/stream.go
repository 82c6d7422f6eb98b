package main

import (
	"context"

	"github.com/aretw0/textops/internal/cli"
	"github.com/aretw0/textops/pkg/runner"
	"github.com/spf13/cobra"
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Execute tool calls read as JSON Lines from stdin",
	Long: `Reads one tool call per line ({"id":"1","name":"toUpperCase","args":{"input":"hi"}})
and writes one tool result per line to stdout, in input order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, _, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		opts := []runner.Option{runner.WithLogger(rt.Logger)}
		if allow, _ := cmd.Flags().GetStringSlice("allow"); len(allow) > 0 {
			opts = append(opts, runner.WithInterceptor(runner.AllowList(allow...)))
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		sigCtx := cli.NewSignalContext(parent)
		defer sigCtx.Cancel()

		err = runner.New(rt.Plugin, opts...).Run(sigCtx, cmd.InOrStdin(), cmd.OutOrStdout())
		if sigCtx.Signal() != nil {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().StringSlice("allow", nil, "Only execute these operations (default all)")
}
