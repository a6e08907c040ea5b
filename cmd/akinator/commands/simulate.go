package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/display"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/simulate"
)

// SimulateCmd lets the engine play against itself.
var SimulateCmd = &cobra.Command{
	Use:   "simulate [entity-name]",
	Short: "Self-play the game over the catalog",
	Long: `Play the game with a scripted oracle answering for a target entity.

With no argument every catalog entity is played once and accuracy is
reported; with an entity name a single game is played against it.

Examples:
  akinator simulate                  # Full batch, accuracy stats
  akinator simulate "Marie Curie"    # One game
  akinator simulate --json           # Structured output`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	data, err := loadGameData()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return simulateOne(cmd, data, args[0])
	}
	return simulateBatch(cmd, data)
}

func simulateOne(cmd *cobra.Command, data *gameData, name string) error {
	var targetID int64 = -1
	for _, e := range data.catalog.Entities() {
		if strings.EqualFold(e.Name, name) {
			targetID = e.ID
			break
		}
	}
	if targetID < 0 {
		return errors.Wrapf(errors.ErrNotFound, "entity %q", name)
	}

	res, err := simulate.Run(data.catalog, data.related, data.tuning, targetID)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(res)
	}

	if res.Correct {
		pterm.Success.Printf("Guessed %s in %d questions (%d guess attempts)\n",
			res.TargetName, res.Questions, res.Guesses)
	} else {
		pterm.Error.Printf("Failed to guess %s after %d questions\n",
			res.TargetName, res.Questions)
	}
	return nil
}

func simulateBatch(cmd *cobra.Command, data *gameData) error {
	stats, err := simulate.RunBatch(data.catalog, data.related, data.tuning)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(stats)
	}

	if data.cfg.Simulate.ShowResults {
		tableData := pterm.TableData{{"Target", "Guessed", "Questions", "Guesses"}}
		for _, res := range stats.Results {
			outcome := pterm.Green("✓")
			if !res.Correct {
				outcome = pterm.Red("✗")
			}
			tableData = append(tableData, []string{
				fmt.Sprintf("%s %s", outcome, res.TargetName),
				fmt.Sprintf("%d", res.GuessedID),
				fmt.Sprintf("%d", res.Questions),
				fmt.Sprintf("%d", res.Guesses),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}
	}

	pterm.Success.Printf("Accuracy: %d/%d (%.0f%%), avg %.1f questions per game\n",
		stats.Correct, stats.Games, stats.Accuracy*100, stats.AvgQuestions)
	return nil
}
