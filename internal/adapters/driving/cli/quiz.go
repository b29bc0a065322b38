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

var quizCmd = &cobra.Command{
	Use:   "quiz [document-id]",
	Short: "Take a quiz on a document",
	Long: `Take a multiple-choice quiz generated from a document.

Without --generate, the most recent existing quiz is used. Answer each
question by typing its letter; an empty answer skips the question. The
score and per-question corrections are shown at the end.

Examples:
  tutor quiz 1                       # Take the latest quiz
  tutor quiz 1 --generate            # Generate a new quiz first
  tutor quiz 1 --generate --questions 10`,
	Args: cobra.ExactArgs(1),
	RunE: runQuiz,
}

var (
	quizGenerate  bool
	quizQuestions int
)

func init() {
	quizCmd.Flags().BoolVar(
		&quizGenerate, "generate", false, "Generate a new quiz before starting")
	quizCmd.Flags().IntVar(
		&quizQuestions, "questions", services.DefaultQuestionCount, "Question count for --generate")
	rootCmd.AddCommand(quizCmd)
}

//nolint:errcheck // CLI interactive flow
func runQuiz(cmd *cobra.Command, args []string) error {
	if quizEngine == nil {
		return errors.New("quiz engine not configured")
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if quizGenerate {
		cmd.Println("Generating quiz. This can take a minute.")
		if err := quizEngine.Generate(ctx, id, quizQuestions); err != nil {
			return friendlyAPIError(err)
		}
	} else {
		if err := quizEngine.Load(ctx, id); err != nil {
			return friendlyAPIError(err)
		}
	}

	attempt, ok := quizEngine.Attempt()
	if !ok {
		cmd.Println("No quiz for this document yet.")
		cmd.Printf("Generate one with: tutor quiz %d --generate\n", id)
		return nil
	}

	cmd.Printf("%s (%d questions)\n", attempt.Quiz.Title, attempt.Len())
	reader := bufio.NewReader(os.Stdin)

	for {
		attempt, ok = quizEngine.Attempt()
		if !ok || attempt.Finished {
			break
		}

		question := attempt.Question()
		cmd.Printf("\n%d. %s\n", attempt.Current+1, question.Text)
		for _, option := range question.Options {
			cmd.Printf("   %s\n", option)
		}
		cmd.Print("Answer: ")

		input, _ := reader.ReadString('\n')
		label := strings.ToUpper(strings.TrimSpace(input))
		if label != "" {
			if err := quizEngine.SelectAnswer(label); err != nil {
				return err
			}
		}
		if err := quizEngine.Advance(); err != nil {
			return err
		}
	}

	score, err := quizEngine.Score()
	if err != nil {
		return err
	}

	cmd.Printf("\nScore: %d/%d\n", score.Correct, score.Total)
	attempt, _ = quizEngine.Attempt()
	for i, correct := range score.PerQuestion {
		if correct {
			continue
		}
		question := attempt.Quiz.Questions[i]
		given := "(skipped)"
		if attempt.Answers[i] != "" {
			given = labelForOption(question, attempt.Answers[i])
		}
		cmd.Printf("\n%d. %s\n", i+1, question.Text)
		cmd.Printf("   Your answer: %s\n", given)
		cmd.Printf("   Correct:     %s\n", labelForOption(question, question.CorrectLabel))
		if question.Explanation != "" {
			cmd.Printf("   %s\n", question.Explanation)
		}
	}
	return nil
}

// labelForOption returns the option text matching a recorded label, for
// rendering answered questions.
func labelForOption(question domain.Question, label string) string {
	for _, option := range question.Options {
		if domain.OptionLabel(option) == label {
			return option
		}
	}
	return label
}
