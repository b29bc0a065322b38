package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute. Commands nil-check the ones
// they use so a partially wired binary fails with a clear message.
var (
	sessionService  driving.SessionService
	documentService driving.DocumentService
	quizEngine      driving.QuizEngine
	flashcardEngine driving.FlashcardEngine
	chatSession     driving.ChatSession
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Study your documents from the terminal",
	Long: `Tutor is a client for the AI knowledge tutor service.

Upload documents (PDF, Word, Markdown) and study them through generated
summaries, quizzes, flashcard decks, and document-scoped Q&A chat.

Run 'tutor tui' for the interactive terminal interface, or use the
subcommands directly:

  tutor login
  tutor documents upload notes.pdf
  tutor summary 1
  tutor quiz 1 --generate
  tutor flashcards 1
  tutor chat 1`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services bundles the driving ports the CLI depends on.
type Services struct {
	Session   driving.SessionService
	Document  driving.DocumentService
	Quiz      driving.QuizEngine
	Flashcard driving.FlashcardEngine
	Chat      driving.ChatSession
}

// SetServices injects the driving ports. Call before Execute.
func SetServices(s Services) {
	sessionService = s.Session
	documentService = s.Document
	quizEngine = s.Quiz
	flashcardEngine = s.Flashcard
	chatSession = s.Chat
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
}
