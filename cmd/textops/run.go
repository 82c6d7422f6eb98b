package main

import (
	"fmt"

	"github.com/aretw0/textops/internal/cli"
	"github.com/aretw0/textops/pkg/operations"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <operation> [text...]",
	Short: "Run one operation and print its result",
	Long: `Runs an operation on the given text. The text is taken from --input when set,
from stdin when the only argument is "-", otherwise from the remaining arguments
joined by spaces.`,
	Example: `  textops run toUpperCase hello world
  echo "  padded  " | textops run trimText -
  textops run wordCount --input "one two three"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, _, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		flag, _ := cmd.Flags().GetString("input")
		input, err := cli.ResolveInput(args[1:], flag, cmd.Flags().Changed("input"), cmd.InOrStdin())
		if err != nil {
			return err
		}

		out, err := rt.Plugin.Call(cmd.Context(), args[0], map[string]any{operations.KeyInput: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("input", "i", "", "Text to operate on")
}
