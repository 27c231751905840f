package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cgpe/repopa/internal/core/domain"
)

const sessionFileName = "session.json"

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the REPOPA server",
		Long:  "Obtain a session token and store it for subsequent repopactl calls. Tokens expire after one hour.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)
			if email == "" {
				fmt.Print("Email: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Print("Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			var sess domain.Session
			err := client.do("POST", "/auth/login", map[string]string{
				"email":    email,
				"password": password,
			}, &sess)
			if err != nil {
				return err
			}

			holder.Set(&sess)
			if err := saveSession(&sess); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s), session valid until %s\n",
				sess.Nombre, sess.Role, sess.ExpiresAt.Local().Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			holder.Clear()
			p, err := sessionPath()
			if err != nil {
				return err
			}
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove session: %w", err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := holder.Current()
			if sess == nil {
				fmt.Println("Not logged in (or session expired)")
				return nil
			}
			fmt.Printf("%s <%s> role=%s expires=%s\n",
				sess.Nombre, sess.Email, sess.Role, sess.ExpiresAt.Local().Format("15:04:05"))
			return nil
		},
	}
}

// sessionPath returns ~/.repopa/session.json.
func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".repopa", sessionFileName), nil
}

func saveSession(sess *domain.Session) error {
	p, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(p, data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// loadSession reads the stored session, returning nil if absent or unreadable.
func loadSession() *domain.Session {
	p, err := sessionPath()
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil
	}
	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	return &sess
}
