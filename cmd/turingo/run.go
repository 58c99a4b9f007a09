package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcamargo0/turingo/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine>",
	Short: "Run a built-in machine",
	Long:  `Runs a machine from the catalog, printing the tape after every step. Use 'turingo list' to see what is available.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		tape, _ := cmd.Flags().GetString("tape")
		start, _ := cmd.Flags().GetInt("start")
		quiet, _ := cmd.Flags().GetBool("quiet")
		jsonMode, _ := cmd.Flags().GetBool("json")

		steps := cfg.MaxSteps
		if cmd.Flags().Changed("steps") {
			steps, _ = cmd.Flags().GetInt("steps")
		}
		if cmd.Flags().Changed("quiet") == false && cfg.Quiet {
			quiet = true
		}

		err = cli.RunMachine(cmd.Context(), cli.RunParams{
			Machine:    args[0],
			Tape:       tape,
			StartIndex: start,
			MaxSteps:   steps,
			TapeLimit:  cfg.TapeLimit,
			Quiet:      quiet,
			JSON:       jsonMode,
			Logger:     cli.NewLogger(cfg.LogLevel),
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("tape", "", "Initial tape, one symbol per character (default: the machine's sample input)")
	runCmd.Flags().Int("start", 0, "Start index of the head on the initial tape")
	runCmd.Flags().Int("steps", 0, "Step budget (default from config)")
	runCmd.Flags().BoolP("quiet", "q", false, "Suppress per-step tape output")
	runCmd.Flags().Bool("json", false, "Print a JSON report instead of the tape view")
}
