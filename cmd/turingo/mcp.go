package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpAdapter "github.com/gcamargo0/turingo/internal/adapters/mcp"
	"github.com/gcamargo0/turingo/internal/cli"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the machine catalog to MCP hosts: list_machines and run_machine tools over stdin/stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Stdout carries the protocol; the logger stays on stderr.
		srv := mcpAdapter.NewServer(cli.NewLogger(cfg.LogLevel))
		if err := srv.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
