package main

import (
	"os"

	"github.com/aretw0/textops/pkg/adapters/process"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <operation>",
	Short: "Run one operation as a process tool",
	Long: `Process-tool mode: arguments are read from TRELLIS_ARG_<KEY> environment
variables and the bare result is written to stdout. Logs go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, _, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		return process.Serve(cmd.Context(), rt.Plugin, args[0], os.Environ(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
