package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [document-id]",
	Short: "Show or generate a document summary",
	Long: `Show the summary for a document, generating one when none exists.

Examples:
  tutor summary 1              # Show, or generate on first use
  tutor summary 1 --regenerate # Force a fresh summary`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

var summaryRegenerate bool

func init() {
	summaryCmd.Flags().BoolVar(
		&summaryRegenerate, "regenerate", false, "Generate a fresh summary even when one exists")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if !summaryRegenerate {
		summary, err := documentService.Summary(ctx, id)
		if err != nil {
			return friendlyAPIError(err)
		}
		if summary != nil {
			cmd.Printf("%s\n\n%s\n", summary.Title, summary.Content)
			return nil
		}
		cmd.Println("No summary yet; generating one. This can take a minute.")
	}

	summary, err := documentService.GenerateSummary(ctx, id)
	if err != nil {
		return friendlyAPIError(err)
	}

	cmd.Printf("%s\n\n%s\n", summary.Title, summary.Content)
	return nil
}
