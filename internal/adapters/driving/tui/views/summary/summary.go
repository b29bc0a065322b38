// Package summary provides the document summary view for the TUI.
package summary

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/messages"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/styles"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// View shows the summary for a selected document, offering generation
// when none exists yet.
type View struct {
	styles          *styles.Styles
	documentService driving.DocumentService

	document     *domain.Document
	summary      *domain.Summary
	loading      bool
	generating   bool
	err          error
	scrollOffset int
	width        int
	height       int
}

// NewView creates a new summary view.
func NewView(s *styles.Styles, documentService driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, documentService: documentService}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDocument sets the document and starts loading its summary.
func (v *View) SetDocument(doc domain.Document) tea.Cmd {
	v.document = &doc
	v.summary = nil
	v.err = nil
	v.scrollOffset = 0
	v.loading = true
	return v.loadSummary(doc.ID)
}

// loadSummary returns a command that fetches the existing summary.
func (v *View) loadSummary(documentID int64) tea.Cmd {
	return func() tea.Msg {
		summary, err := v.documentService.Summary(context.Background(), documentID)
		return messages.SummaryLoaded{DocumentID: documentID, Summary: summary, Err: err}
	}
}

// generateSummary returns a command that generates a fresh summary.
func (v *View) generateSummary(documentID int64) tea.Cmd {
	return func() tea.Msg {
		summary, err := v.documentService.GenerateSummary(context.Background(), documentID)
		return messages.SummaryLoaded{DocumentID: documentID, Summary: summary, Err: err}
	}
}

// Update handles messages for the summary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDocuments}
			}
		case "g":
			if v.document != nil && !v.generating {
				v.generating = true
				v.err = nil
				return v, v.generateSummary(v.document.ID)
			}
		case "up", "k":
			if v.scrollOffset > 0 {
				v.scrollOffset--
			}
		case "down", "j":
			v.scrollOffset++
		}
		return v, nil

	case messages.SummaryLoaded:
		if v.document == nil || msg.DocumentID != v.document.ID {
			return v, nil
		}
		v.loading = false
		v.generating = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.summary = msg.Summary
		v.err = nil
		return v, nil
	}

	return v, nil
}

// View renders the summary view.
func (v *View) View() string {
	var b strings.Builder

	title := "Summary"
	if v.document != nil {
		title = "Summary: " + v.document.Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading summary..."))
	case v.generating:
		b.WriteString(v.styles.Muted.Render("Generating summary. This can take a minute..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case v.summary == nil:
		b.WriteString(v.styles.Muted.Render("No summary yet. Press g to generate one."))
	default:
		b.WriteString(v.renderContent())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] scroll  [g] regenerate  [esc] back"))

	return b.String()
}

// renderContent renders the summary body with scrolling.
func (v *View) renderContent() string {
	lines := strings.Split(v.summary.Content, "\n")
	visible := v.height - 8
	if visible < 1 {
		visible = 1
	}
	if v.scrollOffset > len(lines)-1 {
		v.scrollOffset = len(lines) - 1
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}

	end := v.scrollOffset + visible
	if end > len(lines) {
		end = len(lines)
	}
	return v.styles.Normal.Render(strings.Join(lines[v.scrollOffset:end], "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Summary returns the loaded summary.
func (v *View) Summary() *domain.Summary {
	return v.summary
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
