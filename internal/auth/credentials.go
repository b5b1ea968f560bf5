package auth

import (
	"errors"
	"regexp"

	"github.com/clockhouse/timesheet/internal/config"
	"github.com/clockhouse/timesheet/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// local@domain.tld shape, nothing stricter.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CredentialValidator checks credentials against the single configured demo
// account. The plaintext password is dropped at construction time; only the
// bcrypt hash is kept.
type CredentialValidator struct {
	account      user.User
	passwordHash []byte
	tokens       *Manager
}

func NewCredentialValidator(cfg config.Config, tokens *Manager) (*CredentialValidator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	return &CredentialValidator{
		account: user.User{
			ID:    "1",
			Email: cfg.DemoEmail,
			Name:  cfg.DemoName,
		},
		passwordHash: hash,
		tokens:       tokens,
	}, nil
}

// Authenticate returns the fixed account and a fresh token on success. No
// session state is created server-side.
func (v *CredentialValidator) Authenticate(email, password string) (user.User, string, error) {
	if email == "" || password == "" {
		return user.User{}, "", ErrMissingCredentials
	}

	if !emailPattern.MatchString(email) {
		return user.User{}, "", ErrInvalidEmail
	}

	if email != v.account.Email {
		return user.User{}, "", ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))

	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := v.tokens.GenerateAccessToken(v.account.ID, v.account.Email, v.account.Name)

	if err != nil {
		return user.User{}, "", err
	}

	return v.account, token, nil
}
