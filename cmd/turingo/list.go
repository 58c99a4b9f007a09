package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gcamargo0/turingo/pkg/machines"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in machines",
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range machines.All() {
			fmt.Printf("  %-18s %s\n", d.Name, d.Summary)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
