package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/cmd/akinator/commands"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/logger"
)

var rootCmd = &cobra.Command{
	Use:   "akinator",
	Short: "Akinator - twenty-questions guessing game engine",
	Long: `Akinator - a Bayesian twenty-questions guessing game.

Think of a character; the engine asks yes/no questions and narrows its
candidate set until it is confident enough to guess.

Available commands:
  play     - Play an interactive game in the terminal
  simulate - Let the engine play against itself over the catalog
  catalog  - Inspect and validate the knowledge base
  config   - Show the resolved configuration
  version  - Show version information

Examples:
  akinator play                      # Interactive game
  akinator simulate                  # Self-play over every entity
  akinator simulate "Marie Curie"    # Self-play one target
  akinator catalog stats             # Knowledge base counts
  akinator config show --format toml # Resolved configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Structured JSON output")

	rootCmd.AddCommand(commands.PlayCmd)
	rootCmd.AddCommand(commands.SimulateCmd)
	rootCmd.AddCommand(commands.CatalogCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
