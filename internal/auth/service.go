package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/developpeurInf/focus-academia-hub/internal/model"
)

// ErrInvalidCredentials covers unknown emails, missing credentials and
// wrong passwords alike; callers get no hint which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnknownSubject reports a valid token whose subject no longer resolves
// to a user.
var ErrUnknownSubject = errors.New("unknown subject")

// Directory is the slice of the store the auth service needs.
type Directory interface {
	UserByEmail(email string) (model.User, error)
	CredentialByEmail(email string) (string, error)
}

// Service verifies credentials and resolves bearer tokens to users.
type Service struct {
	dir        Directory
	issuer     string
	signingKey string
	accessTTL  time.Duration
}

// NewService creates an auth service over a user directory.
func NewService(dir Directory, issuer, signingKey string, accessTTL time.Duration) *Service {
	return &Service{dir: dir, issuer: issuer, signingKey: signingKey, accessTTL: accessTTL}
}

// Authenticate checks an email/password pair and returns the matching user.
// The stored hash is never compared to the password directly.
func (s *Service) Authenticate(email, password string) (model.User, error) {
	user, err := s.dir.UserByEmail(email)
	if err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	hash, err := s.dir.CredentialByEmail(email)
	if err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs an access token naming the user's email as subject.
func (s *Service) IssueToken(user model.User) (string, error) {
	return Issue(user.Email, s.issuer, s.signingKey, s.accessTTL)
}

// CurrentUser verifies a token and re-resolves its subject to a user.
func (s *Service) CurrentUser(tokenStr string) (model.User, error) {
	claims, err := Parse(tokenStr, s.signingKey, s.issuer)
	if err != nil {
		return model.User{}, err
	}
	user, err := s.dir.UserByEmail(claims.Subject)
	if err != nil {
		return model.User{}, ErrUnknownSubject
	}
	return user, nil
}
