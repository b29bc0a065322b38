package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driven/api"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage uploaded documents",
	Long: `List, show, upload, and delete documents.

Documents are the source material for summaries, quizzes, flashcards,
and chat. Supported formats: PDF, Word (.docx), Markdown.

Examples:
  tutor documents list
  tutor documents upload notes.pdf
  tutor documents show 1
  tutor documents delete 1`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your documents",
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [document-id]",
	Short: "Show a document including its extracted text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

var documentsUploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsUpload,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [document-id]",
	Short: "Delete a document and its derived materials",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

func init() {
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	documentsCmd.AddCommand(documentsUploadCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

// parseDocumentID parses a positional document ID argument.
func parseDocumentID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid document ID: %s", arg)
	}
	return id, nil
}

// friendlyAPIError rewrites the common failure classes into messages that
// tell the user what to do next.
func friendlyAPIError(err error) error {
	switch {
	case api.IsUnauthorized(err):
		return errors.New("not logged in or session expired. Run: tutor login")
	case api.IsNetwork(err):
		return fmt.Errorf("cannot reach the tutor service: %w", err)
	default:
		return err
	}
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return friendlyAPIError(err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents yet.")
		cmd.Println("Upload one with: tutor documents upload <file>")
		return nil
	}

	cmd.Printf("%-6s %-30s %-10s %-10s %s\n", "ID", "TITLE", "KIND", "LENGTH", "UPLOADED")
	for _, doc := range docs {
		cmd.Printf("%-6d %-30s %-10s %-10d %s\n",
			doc.ID,
			truncate(doc.Title, 30),
			doc.Kind.Label(),
			doc.ContentLength,
			doc.CreatedAt.Format(time.DateOnly))
	}
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	doc, err := documentService.Get(cmd.Context(), id)
	if err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("document %d not found", id)
		}
		return friendlyAPIError(err)
	}

	cmd.Printf("Title:    %s\n", doc.Title)
	cmd.Printf("Filename: %s\n", doc.Filename)
	cmd.Printf("Kind:     %s\n", doc.Kind.Label())
	cmd.Printf("Uploaded: %s\n", doc.CreatedAt.Format(time.RFC3339))
	if doc.Content != "" {
		cmd.Println()
		cmd.Println(doc.Content)
	}
	return nil
}

func runDocumentsUpload(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	path := args[0]
	if _, err := domain.KindFromFilename(path); err != nil {
		return fmt.Errorf("unsupported file type: %s (expected .pdf, .docx, .md)", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	doc, err := documentService.Upload(cmd.Context(), path, file)
	if err != nil {
		return friendlyAPIError(err)
	}

	cmd.Printf("Uploaded %s (document %d)\n", doc.Filename, doc.ID)
	cmd.Printf("Generate materials with: tutor summary %d | tutor quiz %d --generate\n", doc.ID, doc.ID)
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	if err := documentService.Delete(cmd.Context(), id); err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("document %d not found", id)
		}
		return friendlyAPIError(err)
	}

	cmd.Printf("Deleted document %d\n", id)
	return nil
}

// truncate shortens a string for table display.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
