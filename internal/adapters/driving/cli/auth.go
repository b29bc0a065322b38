package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driven/api"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the tutor service",
	Long: `Log in with your username and password.

The bearer token is stored in the config file and reused by every other
command until you log out or it expires.

Examples:
  tutor login                    # Prompts for both
  tutor login --username ada     # Prompts for the password only`,
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Long: `Create a new account, then log in with the same credentials.

Examples:
  tutor register
  tutor register --username ada --email ada@example.com --full-name "Ada L."`,
	RunE: runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored token",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

// Flags for login and register.
var (
	loginUsername    string
	registerUsername string
	registerEmail    string
	registerFullName string
)

// readPassword is swappable in tests; terminals are not available there.
var readPassword = func() (string, error) {
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func init() {
	loginCmd.Flags().StringVar(
		&loginUsername, "username", "", "Username (prompted when omitted)")

	registerCmd.Flags().StringVar(
		&registerUsername, "username", "", "Username (prompted when omitted)")
	registerCmd.Flags().StringVar(
		&registerEmail, "email", "", "Email address (prompted when omitted)")
	registerCmd.Flags().StringVar(
		&registerFullName, "full-name", "", "Full name (optional)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	username := loginUsername
	if username == "" {
		cmd.Print("Username: ")
		input, _ := reader.ReadString('\n')
		username = strings.TrimSpace(input)
	}
	if username == "" {
		return errors.New("username is required")
	}

	cmd.Print("Password: ")
	password, err := readPassword()
	cmd.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	if err := sessionService.Login(cmd.Context(), username, password); err != nil {
		if api.IsUnauthorized(err) {
			return errors.New("invalid username or password")
		}
		return err
	}

	cred := sessionService.Credential()
	if cred != nil {
		cmd.Printf("Logged in as %s\n", cred.User.Username)
	}
	return nil
}

//nolint:errcheck // CLI interactive flow
func runRegister(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	username := registerUsername
	if username == "" {
		cmd.Print("Username: ")
		input, _ := reader.ReadString('\n')
		username = strings.TrimSpace(input)
	}
	if username == "" {
		return errors.New("username is required")
	}

	email := registerEmail
	if email == "" {
		cmd.Print("Email: ")
		input, _ := reader.ReadString('\n')
		email = strings.TrimSpace(input)
	}
	if email == "" {
		return errors.New("email is required")
	}

	cmd.Print("Password: ")
	password, err := readPassword()
	cmd.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	if password == "" {
		return errors.New("password is required")
	}

	err = sessionService.Register(cmd.Context(), driving.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		FullName: registerFullName,
	})
	if err != nil {
		if api.IsValidation(err) {
			return fmt.Errorf("registration rejected: %w", err)
		}
		return err
	}

	cmd.Printf("Account created. Logged in as %s\n", username)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	sessionService.Logout()
	cmd.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if err := sessionService.Restore(cmd.Context()); err != nil {
		return err
	}

	cred := sessionService.Credential()
	if cred == nil {
		cmd.Println("Not logged in. Run: tutor login")
		return nil
	}

	cmd.Printf("Username: %s\n", cred.User.Username)
	cmd.Printf("Email:    %s\n", cred.User.Email)
	if cred.User.FullName != "" {
		cmd.Printf("Name:     %s\n", cred.User.FullName)
	}
	return nil
}
