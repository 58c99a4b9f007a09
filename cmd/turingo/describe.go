package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcamargo0/turingo/internal/cli"
	"github.com/gcamargo0/turingo/internal/presentation/tui"
	"github.com/gcamargo0/turingo/pkg/machines"
)

var describeCmd = &cobra.Command{
	Use:   "describe <machine>",
	Short: "Show a machine's documentation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		def, ok := machines.Get(args[0])
		if !ok {
			fmt.Printf("unknown machine %q (try: %s)\n", args[0], strings.Join(machines.Names(), ", "))
			os.Exit(1)
		}

		if cli.IsTerminal(os.Stdout) {
			render := tui.NewDocRenderer()
			out, err := render(def.Doc)
			if err == nil {
				fmt.Print(out)
				return
			}
		}
		fmt.Println(def.Doc)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
