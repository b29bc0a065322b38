// Package chat provides the document Q&A view for the TUI.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/components/input"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/messages"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/styles"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// View is the chat view. The session owns scope and transcript; the view
// renders them and feeds questions from the input field.
type View struct {
	styles  *styles.Styles
	session driving.ChatSession

	question *input.Field
	waiting  bool
	err      error
	width    int
	height   int
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, session driving.ChatSession) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	field := input.NewField(s, "Ask", "What does this document say about...")
	return &View{styles: s, session: session, question: field}
}

// Init focuses the question field.
func (v *View) Init() tea.Cmd {
	return v.question.Focus()
}

// SetDocument scopes the conversation to a document.
func (v *View) SetDocument(doc domain.Document) tea.Cmd {
	v.session.SelectDocument(doc)
	v.err = nil
	return v.question.Focus()
}

// ask returns a command that sends the question to the service.
func (v *View) ask(question string) tea.Cmd {
	return func() tea.Msg {
		exchange, err := v.session.Ask(context.Background(), question)
		return messages.AnswerReceived{Exchange: exchange, Err: err}
	}
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.question.SetWidth(msg.Width - 10)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			v.question.Blur()
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDocuments}
			}
		case "ctrl+l":
			v.session.Clear()
			v.err = nil
			return v, nil
		case "enter":
			if v.waiting {
				return v, nil
			}
			question := strings.TrimSpace(v.question.Value())
			if question == "" {
				return v, nil
			}
			v.waiting = true
			v.err = nil
			v.question.Reset()
			return v, v.ask(question)
		}
		var cmd tea.Cmd
		v.question, cmd = v.question.Update(msg)
		return v, cmd

	case messages.AnswerReceived:
		v.waiting = false
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil
	}

	return v, nil
}

// View renders the chat view.
func (v *View) View() string {
	var b strings.Builder

	scope, scoped := v.session.Scope()
	title := "Chat"
	if scoped {
		title = "Chat: " + scope.Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if !scoped {
		b.WriteString(v.styles.Muted.Render("Pick a document first: Documents -> Chat."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	b.WriteString(v.renderTranscript())

	if v.waiting {
		b.WriteString(v.styles.Muted.Render("Thinking..."))
		b.WriteString("\n\n")
	}
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.question.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] ask  [ctrl+l] clear conversation  [esc] back"))

	return b.String()
}

// renderTranscript renders the most recent exchanges that fit.
func (v *View) renderTranscript() string {
	transcript := v.session.Transcript()
	if len(transcript) == 0 {
		return v.styles.Muted.Render("Ask anything about this document.") + "\n\n"
	}

	// Show the newest exchanges; each takes roughly four lines.
	visible := (v.height - 12) / 4
	if visible < 1 {
		visible = 1
	}
	start := len(transcript) - visible
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for _, exchange := range transcript[start:] {
		b.WriteString(v.styles.Subtitle.Render("You: "))
		b.WriteString(v.styles.Normal.Render(exchange.Question))
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render("Tutor: "))
		b.WriteString(v.styles.Normal.Render(exchange.Answer))
		b.WriteString("\n\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.question.SetWidth(width - 10)
}

// Waiting reports whether an ask is outstanding.
func (v *View) Waiting() bool {
	return v.waiting
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
