// Package quiz provides the quiz-taking view for the TUI.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/messages"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/styles"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/services"
)

// View is the quiz-taking view. The engine owns quiz state; the view
// renders its snapshots and translates keys into engine transitions.
type View struct {
	styles *styles.Styles
	engine driving.QuizEngine

	document   *domain.Document
	busy       bool
	generating bool
	err        error
	highlight  int // option index under the cursor
	width      int
	height     int
}

// NewView creates a new quiz view.
func NewView(s *styles.Styles, engine driving.QuizEngine) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, engine: engine}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDocument sets the document and loads its latest quiz.
func (v *View) SetDocument(doc domain.Document) tea.Cmd {
	v.document = &doc
	v.err = nil
	v.highlight = 0
	v.busy = true
	return v.loadQuiz(doc.ID)
}

func (v *View) loadQuiz(documentID int64) tea.Cmd {
	return func() tea.Msg {
		err := v.engine.Load(context.Background(), documentID)
		return messages.QuizLoaded{Err: err}
	}
}

func (v *View) generateQuiz(documentID int64) tea.Cmd {
	return func() tea.Msg {
		err := v.engine.Generate(context.Background(), documentID, services.DefaultQuestionCount)
		return messages.QuizLoaded{Err: err}
	}
}

// Update handles messages for the quiz view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.busy || v.generating {
			return v, nil
		}
		return v.handleKeyMsg(msg)

	case messages.QuizLoaded:
		v.busy = false
		v.generating = false
		v.highlight = 0
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
		}
		return v, nil
	}

	return v, nil
}

//nolint:gocyclo // key dispatch
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocuments}
		}
	}

	if msg.String() == "g" {
		if v.document != nil {
			v.generating = true
			v.err = nil
			return v, v.generateQuiz(v.document.ID)
		}
		return v, nil
	}

	attempt, ok := v.engine.Attempt()
	if !ok {
		return v, nil
	}

	if attempt.Finished {
		switch msg.String() {
		case "r":
			v.transition(v.engine.Reset)
			v.highlight = 0
		case "left", "p":
			v.transition(v.engine.Retreat)
		}
		return v, nil
	}

	question := attempt.Question()
	switch msg.String() {
	case "up", "k":
		if v.highlight > 0 {
			v.highlight--
		}
	case "down", "j":
		if v.highlight < len(question.Options)-1 {
			v.highlight++
		}
	case "enter":
		if v.highlight < len(question.Options) {
			label := domain.OptionLabel(question.Options[v.highlight])
			v.transition(func() error { return v.engine.SelectAnswer(label) })
			v.transition(v.engine.Advance)
			v.highlight = 0
		}
	case "right", "n":
		v.transition(v.engine.Advance)
		v.highlight = 0
	case "left", "p":
		v.transition(v.engine.Retreat)
		v.highlight = 0
	default:
		// A typed option letter selects directly.
		label := strings.ToUpper(msg.String())
		if len(label) == 1 {
			for _, option := range question.Options {
				if domain.OptionLabel(option) == label {
					v.transition(func() error { return v.engine.SelectAnswer(label) })
					v.transition(v.engine.Advance)
					v.highlight = 0
					break
				}
			}
		}
	}

	return v, nil
}

// transition runs an engine transition, recording any failure.
func (v *View) transition(fn func() error) {
	if err := fn(); err != nil {
		v.err = err
	}
}

// View renders the quiz view.
func (v *View) View() string {
	var b strings.Builder

	title := "Quiz"
	if v.document != nil {
		title = "Quiz: " + v.document.Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case v.document == nil:
		b.WriteString(v.styles.Muted.Render("Pick a document first: Documents -> Quiz."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	case v.busy:
		b.WriteString(v.styles.Muted.Render("Loading quiz..."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	case v.generating:
		b.WriteString(v.styles.Muted.Render("Generating quiz. This can take a minute..."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	attempt, ok := v.engine.Attempt()
	if !ok {
		b.WriteString(v.styles.Muted.Render("No quiz for this document yet. Press g to generate one."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[g] generate  [esc] back"))
		return b.String()
	}

	if attempt.Finished {
		b.WriteString(v.renderScore(attempt))
		return b.String()
	}

	b.WriteString(v.renderQuestion(attempt))
	return b.String()
}

// renderQuestion renders the current question and its options.
func (v *View) renderQuestion(attempt domain.QuizAttempt) string {
	var b strings.Builder

	question := attempt.Question()
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Question %d of %d", attempt.Current+1, attempt.Len())))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(question.Text))
	b.WriteString("\n\n")

	for i, option := range question.Options {
		cursor := "  "
		marker := "  "
		if attempt.Answer() == domain.OptionLabel(option) {
			marker = "* "
		}
		if i == v.highlight {
			cursor = "> "
			b.WriteString(cursor + marker + v.styles.Selected.Render(option))
		} else {
			b.WriteString(cursor + marker + v.styles.Normal.Render(option))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] move  [enter] answer  [p/n] prev/next  [esc] back"))
	return b.String()
}

// renderScore renders the finished attempt with per-question corrections.
func (v *View) renderScore(attempt domain.QuizAttempt) string {
	var b strings.Builder

	score, err := v.engine.Score()
	if err != nil {
		b.WriteString(v.styles.Error.Render(err.Error()))
		return b.String()
	}

	result := fmt.Sprintf("Score: %d/%d", score.Correct, score.Total)
	if score.Correct == score.Total {
		b.WriteString(v.styles.Success.Render(result + "  Perfect!"))
	} else {
		b.WriteString(v.styles.Subtitle.Render(result))
	}
	b.WriteString("\n\n")

	for i, correct := range score.PerQuestion {
		question := attempt.Quiz.Questions[i]
		mark := v.styles.Success.Render("ok")
		if !correct {
			mark = v.styles.Error.Render("x ")
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, question.Text))
		if !correct {
			given := attempt.Answers[i]
			if given == "" {
				given = "(skipped)"
			}
			b.WriteString(v.styles.Muted.Render(
				fmt.Sprintf("     yours: %s  correct: %s\n", given, question.CorrectLabel)))
			if question.Explanation != "" {
				b.WriteString(v.styles.Muted.Render("     " + question.Explanation + "\n"))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] retake  [g] new quiz  [p] review answers  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Highlight returns the option index under the cursor.
func (v *View) Highlight() int {
	return v.highlight
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
