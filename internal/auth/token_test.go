package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager("super-secret", time.Hour)

	token, err := tm.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	ident, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ident.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", ident.UserID, "user-123")
	}
	if ident.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", ident.Email, "a@x.com")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Second)

	token, err := tm.Issue("u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = tm.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_NotExpiredNearBoundary(t *testing.T) {
	// A token one second short of expiry must still verify.
	tm := NewTokenManager("secret", 2*time.Second)

	token, err := tm.Issue("u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	time.Sleep(time.Second)
	if _, err := tm.Verify(token); err != nil {
		t.Fatalf("Verify inside validity window: %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("right-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	token, err := issuer.Issue("u2", "u2@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := tm.Verify(tok)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}
