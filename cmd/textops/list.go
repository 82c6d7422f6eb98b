package main

import (
	"os"

	"github.com/aretw0/textops/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available operations",
	Long:  `Lists every operation with its description. On a terminal the catalog is rendered as markdown.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, _, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		jsonMode, _ := cmd.Flags().GetBool("json")

		format, width := cli.ListPlain, 80
		switch {
		case jsonMode:
			format = cli.ListJSON
		case cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())):
			format = cli.ListMarkdown
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}

		return cli.PrintCatalog(cmd.OutOrStdout(), rt.Plugin.Tools(), format, width)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}
