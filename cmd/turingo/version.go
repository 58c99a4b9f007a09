package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcamargo0/turingo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of turingo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("turingo version %s\n", strings.TrimSpace(turingo.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
