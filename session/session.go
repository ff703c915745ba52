// Package session owns the client-side TradeX session.
//
// The session is an opaque bearer token with no expiry tracked on this
// side: it is created by a successful login, destroyed by logout, and its
// absence simply means "anonymous". The token lives in a file under the
// user's temp directory, playing the role the root-scoped cookie played in
// the browser client.
package session

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/laplace0-0/tradex"
)

const (
	tokenFile = "tradex-session"
	// loginFailedFile is the transient "show error" flag: written when a
	// login is rejected, consumed once by the next login invocation.
	loginFailedFile = "tradex-login-failed"
)

func path(name string) string { return filepath.Join(os.TempDir(), name) }

// SaveToken persists the session token for later invocations.
func SaveToken(token string) error {
	if err := os.WriteFile(path(tokenFile), []byte(token), 0600); err != nil {
		return fmt.Errorf("cannot persist session: %w", err)
	}
	return nil
}

// Token returns the stored session token. An error means there is no
// session and the user must run 'tradex login' first.
func Token() (string, error) {
	data, err := os.ReadFile(path(tokenFile))
	if err != nil {
		return "", fmt.Errorf("tradex session not found. Please run 'tradex login' first: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear destroys the stored session. Subsequent Resolve calls see no token.
func Clear() error {
	err := os.Remove(path(tokenFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot clear session: %w", err)
	}
	return nil
}

// MarkLoginFailed sets the transient login-failed flag.
func MarkLoginFailed() error {
	return os.WriteFile(path(loginFailedFile), []byte("1"), 0600)
}

// ConsumeLoginFailed reports whether the login-failed flag was set, and
// clears it. The flag is consumed exactly once.
func ConsumeLoginFailed() bool {
	if _, err := os.Stat(path(loginFailedFile)); err != nil {
		return false
	}
	os.Remove(path(loginFailedFile))
	return true
}

// UserService resolves a token to a user profile, the way the api package
// gateway does.
type UserService interface {
	GetUser(ctx context.Context, token string) (*tradex.User, error)
}

// Resolve turns the stored session into a user profile. It never fails to
// its caller: a missing token or a failed remote call degrades to nil, the
// anonymous view.
func Resolve(ctx context.Context, svc UserService) *tradex.User {
	token, err := Token()
	if err != nil {
		return nil
	}
	user, err := svc.GetUser(ctx, token)
	if err != nil {
		log.Printf("cannot resolve session: %v", err)
		return nil
	}
	return user
}
