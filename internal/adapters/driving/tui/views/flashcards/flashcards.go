// Package flashcards provides the flashcard review view for the TUI.
package flashcards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/messages"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/styles"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/services"
)

// View is the flashcard review view. The engine owns the session; the
// view renders snapshots and maps keys to flips, moves, and ratings.
type View struct {
	styles *styles.Styles
	engine driving.FlashcardEngine

	document   *domain.Document
	busy       bool
	generating bool
	reviewing  bool
	err        error
	width      int
	height     int
}

// NewView creates a new flashcards view.
func NewView(s *styles.Styles, engine driving.FlashcardEngine) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, engine: engine}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDocument sets the document and loads its deck.
func (v *View) SetDocument(doc domain.Document) tea.Cmd {
	v.document = &doc
	v.err = nil
	v.busy = true
	return v.loadDeck(doc.ID)
}

func (v *View) loadDeck(documentID int64) tea.Cmd {
	return func() tea.Msg {
		err := v.engine.Load(context.Background(), documentID)
		return messages.FlashcardsLoaded{Err: err}
	}
}

func (v *View) generateDeck(documentID int64) tea.Cmd {
	return func() tea.Msg {
		err := v.engine.Generate(context.Background(), documentID, services.DefaultCardCount)
		return messages.FlashcardsLoaded{Err: err}
	}
}

func (v *View) reviewCard(difficulty domain.Difficulty) tea.Cmd {
	return func() tea.Msg {
		err := v.engine.Review(context.Background(), difficulty)
		return messages.CardReviewed{Err: err}
	}
}

// Update handles messages for the flashcards view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.busy || v.generating || v.reviewing {
			return v, nil
		}
		return v.handleKeyMsg(msg)

	case messages.FlashcardsLoaded:
		v.busy = false
		v.generating = false
		v.err = msg.Err
		return v, nil

	case messages.CardReviewed:
		v.reviewing = false
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocuments}
		}
	case "g":
		if v.document != nil {
			v.generating = true
			v.err = nil
			return v, v.generateDeck(v.document.ID)
		}
		return v, nil
	}

	session, ok := v.engine.Session()
	if !ok {
		return v, nil
	}

	switch msg.String() {
	case " ", "enter", "f":
		if err := v.engine.Flip(); err != nil {
			v.err = err
		}
	case "right", "n", "l":
		if err := v.engine.Next(); err != nil {
			v.err = err
		}
	case "left", "p", "h":
		if err := v.engine.Prev(); err != nil {
			v.err = err
		}
	case "1", "e":
		return v.rate(session, domain.DifficultyEasy)
	case "2", "m":
		return v.rate(session, domain.DifficultyNormal)
	case "3", "d":
		return v.rate(session, domain.DifficultyHard)
	}

	return v, nil
}

// rate submits a rating when the answer side is showing.
func (v *View) rate(session domain.ReviewSession, difficulty domain.Difficulty) (*View, tea.Cmd) {
	if !session.Revealed {
		v.err = domain.ErrNotRevealed
		return v, nil
	}
	v.reviewing = true
	v.err = nil
	return v, v.reviewCard(difficulty)
}

// View renders the flashcards view.
func (v *View) View() string {
	var b strings.Builder

	title := "Flashcards"
	if v.document != nil {
		title = "Flashcards: " + v.document.Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case v.document == nil:
		b.WriteString(v.styles.Muted.Render("Pick a document first: Documents -> Flashcards."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	case v.busy:
		b.WriteString(v.styles.Muted.Render("Loading flashcards..."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	case v.generating:
		b.WriteString(v.styles.Muted.Render("Generating flashcards. This can take a minute..."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", friendlyError(v.err))))
		b.WriteString("\n\n")
	}

	session, ok := v.engine.Session()
	if !ok {
		b.WriteString(v.styles.Muted.Render("No flashcards for this document yet. Press g to generate some."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[g] generate  [esc] back"))
		return b.String()
	}

	b.WriteString(v.renderCard(session))
	return b.String()
}

// renderCard renders the card under the cursor.
func (v *View) renderCard(session domain.ReviewSession) string {
	var b strings.Builder

	card := session.Card()
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Card %d of %d", session.Cursor+1, session.Len())))
	b.WriteString("\n\n")

	if session.Revealed {
		b.WriteString(v.styles.Card.Render(card.Back))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("(answer)"))
	} else {
		b.WriteString(v.styles.Card.Render(card.Front))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("(question)"))
	}

	if v.reviewing {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render("Submitting rating..."))
	}

	b.WriteString("\n\n")
	if session.Revealed {
		b.WriteString(v.styles.Help.Render("[1] easy  [2] normal  [3] hard  [space] hide  [p/n] prev/next  [esc] back"))
	} else {
		b.WriteString(v.styles.Help.Render("[space] reveal  [p/n] prev/next  [g] new deck  [esc] back"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func friendlyError(err error) string {
	if errors.Is(err, domain.ErrNotRevealed) {
		return "reveal the answer before rating"
	}
	return err.Error()
}
