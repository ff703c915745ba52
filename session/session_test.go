package session

import (
	"context"
	"errors"
	"testing"

	"github.com/laplace0-0/tradex"
	"github.com/shopspring/decimal"
)

func TestTokenRoundtrip(t *testing.T) {
	t.Cleanup(func() { Clear() })

	if err := SaveToken("tok-abc"); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}
	token, err := Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("Token() = %q, want tok-abc", token)
	}

	if err := Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := Token(); err == nil {
		t.Error("Token() should fail after Clear()")
	}
	// clearing an already-absent session is not an error
	if err := Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestConsumeLoginFailed(t *testing.T) {
	if ConsumeLoginFailed() {
		t.Error("flag should start unset")
	}
	if err := MarkLoginFailed(); err != nil {
		t.Fatalf("MarkLoginFailed() error = %v", err)
	}
	if !ConsumeLoginFailed() {
		t.Error("flag should be set after MarkLoginFailed()")
	}
	// consumed exactly once
	if ConsumeLoginFailed() {
		t.Error("flag should be cleared by the first consume")
	}
}

type fakeUserService struct {
	user *tradex.User
	err  error
}

func (f fakeUserService) GetUser(_ context.Context, token string) (*tradex.User, error) {
	return f.user, f.err
}

func TestResolve(t *testing.T) {
	t.Cleanup(func() { Clear() })

	// no session: anonymous, no remote call needed
	Clear()
	if user := Resolve(context.Background(), fakeUserService{}); user != nil {
		t.Errorf("Resolve() without a session = %v, want nil", user)
	}

	// stored session, failing backend: degrades to anonymous
	SaveToken("tok-abc")
	svc := fakeUserService{err: errors.New("backend unavailable")}
	if user := Resolve(context.Background(), svc); user != nil {
		t.Errorf("Resolve() with failing backend = %v, want nil", user)
	}

	// stored session, healthy backend
	want := &tradex.User{ID: 1, Email: "laplace@example.com", Wallet: decimal.NewFromInt(100000)}
	if user := Resolve(context.Background(), fakeUserService{user: want}); user != want {
		t.Errorf("Resolve() = %v, want %v", user, want)
	}
}
