package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/elementium"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of elementium",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "elementium version %s\n", strings.TrimSpace(elementium.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
