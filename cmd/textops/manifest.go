package main

import (
	"os"

	"github.com/aretw0/textops"
	"github.com/aretw0/textops/pkg/adapters/process"
	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print a process-tool manifest for hosts",
	Long:  `Prints a tools file declaring every operation as "<command> exec <operation>".`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		command, _ := cmd.Flags().GetString("command")
		if command == "" {
			exe, err := os.Executable()
			if err != nil {
				return err
			}
			command = exe
		}

		cfg := process.Manifest(textops.New().Tools(), command)
		return process.WriteManifest(cmd.OutOrStdout(), cfg, format)
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.Flags().String("format", process.FormatYAML, "Output format: yaml or json")
	manifestCmd.Flags().String("command", "", "Command hosts should run (default: this executable)")
}
