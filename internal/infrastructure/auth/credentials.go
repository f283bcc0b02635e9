package auth

import (
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("bad credentials")

// CredentialStore checks workshop staff logins against environment-provided
// credentials. MECHANIC_PASSWORD_HASH takes precedence over the plaintext
// MECHANIC_PASSWORD fallback used in local setups.
type CredentialStore struct {
	username     string
	passwordHash []byte
}

func NewCredentialStoreFromEnv() (*CredentialStore, error) {
	username := os.Getenv("MECHANIC_USERNAME")
	if username == "" {
		username = "mechanic"
	}

	if hash := os.Getenv("MECHANIC_PASSWORD_HASH"); hash != "" {
		return &CredentialStore{username: username, passwordHash: []byte(hash)}, nil
	}

	password := os.Getenv("MECHANIC_PASSWORD")
	if password == "" {
		return nil, errors.New("MECHANIC_PASSWORD or MECHANIC_PASSWORD_HASH must be set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &CredentialStore{username: username, passwordHash: hash}, nil
}

func (s *CredentialStore) Check(username, password string) error {
	if username != s.username {
		return ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrBadCredentials
	}
	return nil
}
