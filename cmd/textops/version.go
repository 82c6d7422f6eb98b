package main

import (
	"fmt"

	"github.com/aretw0/textops"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of textops",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "textops version %s\n", textops.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
