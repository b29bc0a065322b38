package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driven/api"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat [document-id]",
	Short: "Ask questions about a document",
	Long: `Ask questions about a document. Answers are grounded in the
document's content.

Without --question an interactive session starts; type questions one per
line, /clear to reset the conversation, /quit to leave. Without a
document ID the eligible documents are listed.

Examples:
  tutor chat                           # List chat-ready documents
  tutor chat 1                         # Interactive session
  tutor chat 1 --question "What is the main argument?"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

var chatQuestion string

func init() {
	chatCmd.Flags().StringVarP(
		&chatQuestion, "question", "q", "", "Ask a single question and exit")
	rootCmd.AddCommand(chatCmd)
}

//nolint:errcheck // CLI interactive flow
func runChat(cmd *cobra.Command, args []string) error {
	if chatSession == nil {
		return errors.New("chat session not configured")
	}

	ctx := cmd.Context()

	if len(args) == 0 {
		docs, err := chatSession.EligibleDocuments(ctx)
		if err != nil {
			return friendlyAPIError(err)
		}
		if len(docs) == 0 {
			cmd.Println("No documents available for chat yet.")
			cmd.Println("Upload one with: tutor documents upload <file>")
			return nil
		}
		cmd.Println("Documents available for chat:")
		for _, doc := range docs {
			cmd.Printf("  %d  %s\n", doc.ID, doc.Title)
		}
		cmd.Println("\nStart with: tutor chat <document-id>")
		return nil
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	// Resolve the document so the scope carries its title.
	docs, err := chatSession.EligibleDocuments(ctx)
	if err != nil {
		return friendlyAPIError(err)
	}
	var selected *domain.Document
	for i := range docs {
		if docs[i].ID == id {
			selected = &docs[i]
			break
		}
	}
	if selected == nil {
		return fmt.Errorf("document %d is not available for chat", id)
	}
	chatSession.SelectDocument(*selected)

	if chatQuestion != "" {
		exchange, err := chatSession.Ask(ctx, chatQuestion)
		if err != nil {
			return chatAskError(err)
		}
		cmd.Println(exchange.Answer)
		return nil
	}

	cmd.Printf("Chatting about %q. /clear resets, /quit leaves.\n", selected.Title)
	reader := bufio.NewReader(os.Stdin)

	for {
		cmd.Print("\n> ")
		input, readErr := reader.ReadString('\n')
		if readErr != nil {
			return nil
		}
		question := strings.TrimSpace(input)

		switch question {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			chatSession.Clear()
			cmd.Println("Conversation cleared.")
			continue
		}

		exchange, err := chatSession.Ask(ctx, question)
		if err != nil {
			cmd.Printf("Error: %v\n", chatAskError(err))
			continue
		}
		cmd.Printf("\n%s\n", exchange.Answer)
	}
}

func chatAskError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyQuestion):
		return errors.New("question is empty")
	case api.IsUnauthorized(err):
		return errors.New("not logged in or session expired. Run: tutor login")
	default:
		return err
	}
}
