package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/messages"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/styles"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/views/chat"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/views/documents"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/views/flashcards"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/views/login"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/views/menu"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/views/quiz"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/views/summary"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// loginView is the login / register form.
	loginView *login.View

	// menuView is the main navigation menu.
	menuView *menu.View

	// documentsView is the document list view component.
	documentsView *documents.View

	// summaryView is the document summary view component.
	summaryView *summary.View

	// quizView is the quiz-taking view component.
	quizView *quiz.View

	// flashcardsView is the flashcard review view component.
	flashcardsView *flashcards.View

	// chatView is the document Q&A view component.
	chatView *chat.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// resolving is true while the persisted session is being restored.
	// Protected views stay unreachable until it settles.
	resolving bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		loginView:      login.NewView(s, ports.Session),
		menuView:       menu.NewView(s),
		documentsView:  documents.NewView(s, ports.Document),
		summaryView:    summary.NewView(s, ports.Document),
		quizView:       quiz.NewView(s, ports.Quiz),
		flashcardsView: flashcards.NewView(s, ports.Flashcard),
		chatView:       chat.NewView(s, ports.Chat),
		currentView:    messages.ViewLogin,
		resolving:      true,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It starts resolving the persisted session;
// until that settles no protected view is shown.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tutor"),
		a.restoreSession(),
	)
}

// restoreSession resolves a previously stored token to a user.
func (a *App) restoreSession() tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Session.Restore(a.ctx)
		return messages.SessionResolved{State: a.ports.Session.State(), Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.loginView.SetDimensions(msg.Width, msg.Height)
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		a.summaryView.SetDimensions(msg.Width, msg.Height)
		a.quizView.SetDimensions(msg.Width, msg.Height)
		a.flashcardsView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.SessionResolved:
		a.resolving = false
		if msg.Err != nil {
			a.err = msg.Err
		}
		if msg.State == driving.SessionAuthenticated {
			a.setMenuUsername()
			a.currentView = messages.ViewMenu
			return a, nil
		}
		a.currentView = messages.ViewLogin
		return a, a.loginView.Init()

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.resolving {
			return a, nil
		}
		return a.forwardToView(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewMenu:
			a.setMenuUsername()
			return a, a.menuView.Init()
		case messages.ViewDocuments:
			return a, a.documentsView.Init()
		case messages.ViewLogin:
			return a, a.loginView.Init()
		case messages.ViewSummary, messages.ViewQuiz,
			messages.ViewFlashcards, messages.ViewChat, messages.ViewHelp:
			// Reached with a document through DocumentSelected; direct
			// navigation shows their pick-a-document hint.
		}
		return a, nil

	case messages.DocumentSelected:
		a.currentView = msg.Target
		switch msg.Target {
		case messages.ViewSummary:
			return a, a.summaryView.SetDocument(msg.Document)
		case messages.ViewQuiz:
			return a, a.quizView.SetDocument(msg.Document)
		case messages.ViewFlashcards:
			return a, a.flashcardsView.SetDocument(msg.Document)
		case messages.ViewChat:
			return a, a.chatView.SetDocument(msg.Document)
		case messages.ViewLogin, messages.ViewMenu,
			messages.ViewDocuments, messages.ViewHelp:
			// Not document-scoped targets.
		}
		return a, nil

	case messages.LoggedOut:
		a.ports.Session.Logout()
		a.currentView = messages.ViewLogin
		return a, a.loginView.Init()

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forwardToView(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward everything else to the active view.
	switch a.currentView {
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	case messages.ViewQuiz:
		a.quizView, cmd = a.quizView.Update(msg)
	case messages.ViewFlashcards:
		a.flashcardsView, cmd = a.flashcardsView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewHelp:
		// Help view has no state to update.
	}

	return a, cmd
}

// forwardToView routes a message to the active view.
func (a *App) forwardToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	case messages.ViewQuiz:
		a.quizView, cmd = a.quizView.Update(msg)
	case messages.ViewFlashcards:
		a.flashcardsView, cmd = a.flashcardsView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewHelp:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			a.currentView = messages.ViewMenu
		}
	}

	return a, cmd
}

// setMenuUsername refreshes the username shown in the menu header.
func (a *App) setMenuUsername() {
	if cred := a.ports.Session.Credential(); cred != nil {
		a.menuView.SetUsername(cred.User.Username)
	} else {
		a.menuView.SetUsername("")
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.resolving {
		return a.styles.Muted.Render("Checking session...")
	}

	switch a.currentView {
	case messages.ViewLogin:
		return a.loginView.View()
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewSummary:
		return a.summaryView.View()
	case messages.ViewQuiz:
		return a.quizView.View()
	case messages.ViewFlashcards:
		return a.flashcardsView.View()
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Documents:
  enter       Study actions for the selected document
  r           Reload

Quiz:
  j/k         Move between options
  enter       Answer and advance
  p/n         Previous / next question
  r           Retake (when finished)
  g           Generate a new quiz

Flashcards:
  space       Flip the card
  p/n         Previous / next card
  1/2/3       Rate recall easy/normal/hard (answer side only)
  g           Generate a new deck

Chat:
  enter       Ask
  ctrl+l      Clear the conversation

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Resolving reports whether session restore is still in flight.
func (a *App) Resolving() bool {
	return a.resolving
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
