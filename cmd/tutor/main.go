// Command tutor is a terminal client for an AI-assisted document learning
// service: upload documents, then study them with generated summaries,
// quizzes, flashcards and scoped chat.
package main

import (
	"fmt"
	"os"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driven/api"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driven/config/file"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/cli"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/services"
)

// defaultServerURL is used when neither config nor environment names one.
const defaultServerURL = "http://localhost:8000"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file doubles as the token store; it lives in ~/.tutor unless
	// overridden for tests or parallel profiles.
	store, err := file.NewConfigStore(os.Getenv("TUTOR_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	serverURL := os.Getenv("TUTOR_SERVER_URL")
	if serverURL == "" {
		serverURL = store.GetString(file.KeyServerURL)
	}
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	client := api.NewClient(serverURL, store)

	cli.SetServices(cli.Services{
		Session:   services.NewSession(client, store),
		Document:  services.NewDocumentService(client, client),
		Quiz:      services.NewQuizEngine(client),
		Flashcard: services.NewFlashcardEngine(client),
		Chat:      services.NewChatSession(client),
	})
	cli.SetVersion(version)

	return cli.Execute()
}
