package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"walletgg/internal/crypto"
	"walletgg/internal/domain"
)

var password string

// readPassword returns --password when given, otherwise prompts. Input is
// hidden when stdin is a terminal.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	if password != "" {
		return password, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		return string(b), err
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func signupCmd() *cobra.Command {
	var req domain.SignUpRequest
	cmd := &cobra.Command{
		Use:   "signup [username]",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Username = domain.Username(args[0])
			pw, err := readPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			req.Password1, req.Password2 = pw, pw
			// The session already told the user what happened.
			if err := appCtx.Session.SignUp(cmd.Context(), req); err != nil {
				return errSilent
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&password, "password", "", "password (prompted when omitted)")
	f.StringVar(&req.Email, "email", "", "email address")
	f.StringVar(&req.Nickname, "nickname", "", "display name")
	f.StringVar(&req.PhoneNumber, "phone", "", "phone number")
	f.StringVar(&req.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	f.IntVar(&req.Age, "age", 0, "age")
	f.Int64Var(&req.Money, "money", 0, "current assets in KRW")
	f.Int64Var(&req.Salary, "salary", 0, "annual salary in KRW")
	return cmd
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Log in and remember the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			err = appCtx.Session.LogIn(cmd.Context(), domain.LoginRequest{
				Username: domain.Username(args[0]),
				Password: pw,
			})
			if err != nil {
				if domain.StatusOf(err) == http.StatusBadRequest {
					return errors.New("login failed: wrong username or password")
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Session.LogOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, ok := appCtx.Session.Credential()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (token %s)\n", cred.Username, crypto.Fingerprint([]byte(cred.Token)))
			return nil
		},
	}
}
