package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Open a session against the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.TrimSpace(args[0])
			if password == "" {
				entered, err := promptPassword(cmd)
				if err != nil {
					return err
				}
				password = entered
			}

			result := a.adapter.Login(cmd.Context(), email, password)
			if !result.Success {
				if result.Error != nil {
					return errors.New(result.Error.Message)
				}
				return errors.New("login failed")
			}
			if err := a.sessions.save(a.client); err != nil {
				return fmt.Errorf("persist session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := a.adapter.Logout(cmd.Context())
			if !result.Success {
				if result.Error != nil {
					return errors.New(result.Error.Message)
				}
				return errors.New("logout failed")
			}
			if err := a.sessions.clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the session identity and its organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := a.adapter.Identity(cmd.Context())
			if err != nil {
				return err
			}
			if identity == nil {
				return errors.New("not logged in")
			}
			return printJSON(cmd, identity)
		},
	}
}

func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; pass --password")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
