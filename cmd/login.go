package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/laplace0-0/tradex/api"
	"github.com/laplace0-0/tradex/session"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in to TradeX and store the session token" }
func (*loginCmd) Usage() string {
	return `tradex login -email <email> -password <password>

  Exchanges the credentials for a session token and stores it for the other
  commands. The token has no client-side expiry; 'tradex logout' destroys it.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "account email")
	f.StringVar(&c.password, "password", "", "account password")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The previous invocation may have left the one-shot failure flag; this
	// is where the user sees it, like the toast on the login page.
	if session.ConsumeLoginFailed() {
		fmt.Fprintln(os.Stderr, "Previous login failed. Please check your credentials.")
	}

	if c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -email and -password are required.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	token, err := client.Login(ctx, c.email, c.password)
	if err != nil {
		if errors.Is(err, api.ErrInvalidCredentials) {
			if err := session.MarkLoginFailed(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: cannot record failed login: %v\n", err)
			}
			fmt.Fprintln(os.Stderr, "Login failed. Please check your credentials.")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "An error occurred. Please try again later: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := session.SaveToken(token); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Login successful!")
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "destroy the stored session" }
func (*logoutCmd) Usage() string            { return "tradex logout\n" }
func (*logoutCmd) SetFlags(*flag.FlagSet)   {}
func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := session.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
