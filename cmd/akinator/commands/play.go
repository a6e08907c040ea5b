package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/engine"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/gamemaster"
)

// PlayCmd runs an interactive game in the terminal.
var PlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive guessing game",
	Long: `Play a twenty-questions game against the engine.

Think of a character from the catalog, then answer each question with:
  y  - yes
  p  - probably
  d  - don't know
  pn - probably not
  n  - no

The engine guesses once it is confident enough or runs out of questions.`,
	RunE: runPlay,
}

var playLanguageFlag string

func init() {
	PlayCmd.Flags().StringVar(&playLanguageFlag, "language", "", "Question language (defaults to the catalog's)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	data, err := loadGameData()
	if err != nil {
		return err
	}

	// Flag beats catalog file beats config default.
	language := playLanguageFlag
	if language == "" {
		language = data.catalog.DefaultLanguage()
	}
	if language == "" {
		language = data.cfg.Catalog.DefaultLanguage
	}

	if data.cfg.Catalog.Watch {
		watcher, err := catalogWatcher(data)
		if err != nil {
			pterm.Warning.Printf("Catalog watching disabled: %v\n", err)
		} else {
			defer watcher.Stop()
		}
	}

	m := gamemaster.New(data.catalog, data.related, data.tuning)

	const userID = 1
	m.StartGame(userID, language)
	if err := m.SeedAll(userID); err != nil {
		return err
	}

	pterm.DefaultHeader.Println("Think of a character and I will guess it")
	pterm.Info.Printf("Answers: y / p / d / pn / n (q to quit)\n\n")

	reader := bufio.NewReader(os.Stdin)
	for {
		turn, err := m.NextTurn(userID)
		if err != nil {
			return err
		}

		if turn.Guess != nil {
			correct, quit := askGuess(reader, turn.Guess)
			if quit {
				m.Abandon(userID)
				return nil
			}
			followUp, err := m.SubmitGuessResult(userID, correct)
			if err != nil {
				return err
			}
			if correct {
				info, _ := m.SessionInfo(userID)
				pterm.Success.Printf("Got it in %d questions!\n", info.QuestionCount)
				return nil
			}
			if followUp != nil {
				continue
			}
			return finishLost(m, userID, reader)
		}

		ans, quit, err := askQuestion(reader, turn.Text)
		if err != nil {
			return err
		}
		if quit {
			m.Abandon(userID)
			return nil
		}
		if err := m.SubmitAnswer(userID, turn.Question.ID, ans); err != nil {
			return err
		}
	}
}

// askQuestion prompts for one answer, re-prompting on unparseable input.
func askQuestion(reader *bufio.Reader, text string) (engine.Answer, bool, error) {
	for {
		pterm.Printf("%s ", pterm.LightCyan(text))
		line, err := reader.ReadString('\n')
		if err != nil {
			return engine.AnswerDontKnow, true, nil
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "q" || line == "quit" {
			return engine.AnswerDontKnow, true, nil
		}
		ans, err := engine.ParseAnswer(line)
		if err != nil {
			if errors.Is(err, errors.ErrInvalidAnswer) {
				pterm.Warning.Println("Please answer y, p, d, pn or n")
				continue
			}
			return engine.AnswerDontKnow, false, err
		}
		return ans, false, nil
	}
}

// askGuess presents a guess and reads a yes/no confirmation.
func askGuess(reader *bufio.Reader, guess *gamemaster.Guess) (correct, quit bool) {
	for {
		pterm.Printf("%s Is it %s? (y/n) ",
			pterm.Magenta("My guess:"), pterm.Bold.Sprint(guess.Name))
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, true
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, false
		case "n", "no":
			return false, false
		case "q", "quit":
			return false, true
		}
		pterm.Warning.Println("Please answer y or n")
	}
}

// finishLost runs the learning exchange after the engine gives up, then
// shows where the player's character ranked.
func finishLost(m *gamemaster.Manager, userID int64, reader *bufio.Reader) error {
	pterm.Println()
	pterm.Printf("I give up! Who was it? ")
	line, _ := reader.ReadString('\n')
	name := strings.TrimSpace(line)
	if name != "" {
		pterm.Info.Printf("I'll remember %s for next time.\n", name)
	}
	if err := m.FinishLearning(userID); err != nil {
		return err
	}

	top, err := m.Top(userID, 3)
	if err != nil {
		return err
	}
	tableData := pterm.TableData{{"Candidate", "Weight"}}
	for _, g := range top {
		tableData = append(tableData, []string{g.Name, fmt.Sprintf("%.3f", g.Weight)})
	}
	pterm.Println()
	pterm.DefaultSection.Println("My final suspects were")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
