package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/services"
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards [document-id]",
	Short: "Review flashcards for a document",
	Long: `Review the flashcard deck generated from a document.

Each card shows its question side first. Press Enter to reveal the
answer, then rate your recall: e (easy), n (normal), h (hard). The
rating is sent to the service, which schedules the next review.
Type q to stop early.

Examples:
  tutor flashcards 1                   # Review the existing deck
  tutor flashcards 1 --generate        # Generate a new deck first
  tutor flashcards 1 --generate --cards 20`,
	Args: cobra.ExactArgs(1),
	RunE: runFlashcards,
}

var (
	flashcardsGenerate bool
	flashcardsCount    int
)

func init() {
	flashcardsCmd.Flags().BoolVar(
		&flashcardsGenerate, "generate", false, "Generate a new deck before starting")
	flashcardsCmd.Flags().IntVar(
		&flashcardsCount, "cards", services.DefaultCardCount, "Card count for --generate")
	rootCmd.AddCommand(flashcardsCmd)
}

//nolint:errcheck,gocognit // CLI interactive flow
func runFlashcards(cmd *cobra.Command, args []string) error {
	if flashcardEngine == nil {
		return errors.New("flashcard engine not configured")
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if flashcardsGenerate {
		cmd.Println("Generating flashcards. This can take a minute.")
		if err := flashcardEngine.Generate(ctx, id, flashcardsCount); err != nil {
			return friendlyAPIError(err)
		}
	} else {
		if err := flashcardEngine.Load(ctx, id); err != nil {
			return friendlyAPIError(err)
		}
	}

	session, ok := flashcardEngine.Session()
	if !ok {
		cmd.Println("No flashcards for this document yet.")
		cmd.Printf("Generate some with: tutor flashcards %d --generate\n", id)
		return nil
	}

	cmd.Printf("Reviewing %d cards. Enter reveals, e/n/h rates, q quits.\n", session.Len())
	reader := bufio.NewReader(os.Stdin)
	reviewed := 0

	for {
		session, ok = flashcardEngine.Session()
		if !ok {
			break
		}
		card := session.Card()

		cmd.Printf("\nCard %d/%d\n", session.Cursor+1, session.Len())
		cmd.Printf("Q: %s\n", card.Front)
		cmd.Print("(Enter to reveal, q to quit) ")
		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) == "q" {
			break
		}

		if err := flashcardEngine.Flip(); err != nil {
			return err
		}
		cmd.Printf("A: %s\n", card.Back)

		cmd.Print("Recall (e)asy / (n)ormal / (h)ard, s skips, q quits: ")
		input, _ = reader.ReadString('\n')
		choice := strings.TrimSpace(strings.ToLower(input))

		if choice == "q" {
			break
		}

		atEnd := session.AtEnd()
		if choice == "s" || choice == "" {
			if err := flashcardEngine.Next(); err != nil {
				return err
			}
		} else {
			difficulty, valid := difficultyFromChoice(choice)
			if !valid {
				cmd.Println("Unknown rating; skipping.")
				if err := flashcardEngine.Next(); err != nil {
					return err
				}
			} else {
				if err := flashcardEngine.Review(ctx, difficulty); err != nil {
					return friendlyAPIError(err)
				}
				reviewed++
			}
		}

		if atEnd {
			break
		}
	}

	cmd.Printf("\nDone. Rated %d cards.\n", reviewed)
	return nil
}

func difficultyFromChoice(choice string) (domain.Difficulty, bool) {
	switch choice {
	case "e", "easy":
		return domain.DifficultyEasy, true
	case "n", "normal":
		return domain.DifficultyNormal, true
	case "h", "hard":
		return domain.DifficultyHard, true
	default:
		return 0, false
	}
}
