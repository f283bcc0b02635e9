package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWT_SignVerify(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	token, err := j.Sign("mechanic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, err := j.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub != "mechanic" {
		t.Fatalf("expected subject mechanic, got %q", sub)
	}
}

func TestJWT_VerifyRejectsTampered(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)
	other := NewJWT("other-secret", time.Hour)

	token, err := other.Sign("mechanic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := j.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := j.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWT_VerifyRejectsExpired(t *testing.T) {
	j := NewJWT("test-secret", -time.Minute)

	token, err := j.Sign("mechanic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := j.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCredentialStore_Check(t *testing.T) {
	t.Setenv("MECHANIC_USERNAME", "ivan")
	t.Setenv("MECHANIC_PASSWORD", "spanner42")
	t.Setenv("MECHANIC_PASSWORD_HASH", "")

	store, err := NewCredentialStoreFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Check("ivan", "spanner42"); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
	if err := store.Check("ivan", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if err := store.Check("someone", "spanner42"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestCredentialStore_RequiresPassword(t *testing.T) {
	t.Setenv("MECHANIC_USERNAME", "")
	t.Setenv("MECHANIC_PASSWORD", "")
	t.Setenv("MECHANIC_PASSWORD_HASH", "")

	if _, err := NewCredentialStoreFromEnv(); err == nil {
		t.Fatalf("expected error when no password is configured")
	}
}
