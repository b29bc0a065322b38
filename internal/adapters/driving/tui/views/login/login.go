// Package login provides the login and registration view for the TUI.
package login

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driven/api"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/components/input"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/messages"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/styles"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// Mode selects between the login and register forms.
type Mode int

const (
	// ModeLogin shows username and password.
	ModeLogin Mode = iota
	// ModeRegister additionally shows email and full name.
	ModeRegister
)

// View is the login / register view.
type View struct {
	styles  *styles.Styles
	session driving.SessionService

	mode     Mode
	username *input.Field
	password *input.Field
	email    *input.Field
	fullName *input.Field
	focused  int

	submitting bool
	err        error
	width      int
	height     int
}

// NewView creates a login view in login mode with the username focused.
func NewView(s *styles.Styles, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:   s,
		session:  session,
		username: input.NewField(s, "Username", ""),
		password: input.NewPasswordField(s, "Password"),
		email:    input.NewField(s, "Email", "you@example.com"),
		fullName: input.NewField(s, "Full name (optional)", ""),
	}
	v.username.Focus()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.username.Focus()
}

// fields returns the focusable fields for the current mode.
func (v *View) fields() []*input.Field {
	if v.mode == ModeRegister {
		return []*input.Field{v.username, v.email, v.fullName, v.password}
	}
	return []*input.Field{v.username, v.password}
}

// Update handles messages for the login view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.submitting {
			return v, nil
		}
		switch msg.String() {
		case "tab", "down":
			return v, v.focusNext(1)
		case "shift+tab", "up":
			return v, v.focusNext(-1)
		case "ctrl+r":
			v.toggleMode()
			return v, nil
		case "enter":
			return v, v.submit()
		}
		// Forward typing to the focused field.
		fields := v.fields()
		var cmd tea.Cmd
		fields[v.focused], cmd = fields[v.focused].Update(msg)
		return v, cmd

	case messages.LoginCompleted:
		v.submitting = false
		if msg.Err != nil {
			v.err = friendlyAuthError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.password.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

func (v *View) focusNext(direction int) tea.Cmd {
	fields := v.fields()
	fields[v.focused].Blur()
	v.focused = (v.focused + direction + len(fields)) % len(fields)
	return fields[v.focused].Focus()
}

func (v *View) toggleMode() {
	v.fields()[v.focused].Blur()
	if v.mode == ModeLogin {
		v.mode = ModeRegister
	} else {
		v.mode = ModeLogin
	}
	v.focused = 0
	v.err = nil
	v.fields()[0].Focus()
}

// submit runs the login or register call off the update loop.
func (v *View) submit() tea.Cmd {
	username := strings.TrimSpace(v.username.Value())
	password := v.password.Value()
	if username == "" || password == "" {
		v.err = errors.New("username and password are required")
		return nil
	}

	mode := v.mode
	email := strings.TrimSpace(v.email.Value())
	fullName := strings.TrimSpace(v.fullName.Value())
	if mode == ModeRegister && email == "" {
		v.err = errors.New("email is required")
		return nil
	}

	v.submitting = true
	v.err = nil

	return func() tea.Msg {
		var err error
		if mode == ModeRegister {
			err = v.session.Register(context.Background(), driving.RegisterInput{
				Username: username,
				Email:    email,
				Password: password,
				FullName: fullName,
			})
		} else {
			err = v.session.Login(context.Background(), username, password)
		}
		return messages.LoginCompleted{Err: err}
	}
}

// View renders the login form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Tutor"))
	b.WriteString("\n")
	if v.mode == ModeRegister {
		b.WriteString(v.styles.Muted.Render("Create an account"))
	} else {
		b.WriteString(v.styles.Muted.Render("Log in to your account"))
	}
	b.WriteString("\n\n")

	for _, field := range v.fields() {
		b.WriteString(field.View())
		b.WriteString("\n")
	}

	if v.submitting {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Signing in..."))
	}
	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.err.Error()))
	}

	b.WriteString("\n\n")
	hint := "[enter] log in  [ctrl+r] register instead  [ctrl+c] quit"
	if v.mode == ModeRegister {
		hint = "[enter] create account  [ctrl+r] log in instead  [ctrl+c] quit"
	}
	b.WriteString(v.styles.Help.Render("[tab] next field  " + hint))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// CurrentMode returns the active form mode.
func (v *View) CurrentMode() Mode {
	return v.mode
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Submitting reports whether a login call is outstanding.
func (v *View) Submitting() bool {
	return v.submitting
}

func friendlyAuthError(err error) error {
	switch {
	case api.IsUnauthorized(err):
		return errors.New("invalid username or password")
	case api.IsValidation(err):
		return err
	case api.IsNetwork(err):
		return errors.New("cannot reach the tutor service")
	default:
		return err
	}
}
