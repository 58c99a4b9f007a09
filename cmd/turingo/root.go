package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcamargo0/turingo"
	"github.com/gcamargo0/turingo/internal/cli"
	"github.com/gcamargo0/turingo/internal/config"
	"github.com/gcamargo0/turingo/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "turingo",
	Short: "turingo is a Turing machine workbench",
	Long:  `turingo runs single-tape deterministic Turing machines: a catalog of built-in machines, a step-by-step tape view, and HTTP/MCP adapters for embedding.`,
	Run: func(cmd *cobra.Command, args []string) {
		if cli.IsTerminal(os.Stdout) {
			tui.PrintBanner(turingo.Version)
		}
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the turingo config file")
}

// loadConfig resolves the config file for any command.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
