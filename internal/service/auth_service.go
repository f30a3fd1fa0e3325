package service

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"messages/internal/entity"
	"messages/internal/repository"
)

const minPasswordLength = 2

// Session is an issued bearer token.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(username, password string) (*entity.User, error)
	Login(username, password string) (*Session, error)
	Logout(token string) error
	// ResolveToken maps a bearer token to the owning identity. Unknown,
	// malformed or expired tokens resolve to nil without error, so the
	// caller proceeds unauthenticated.
	ResolveToken(token string) (*Identity, error)
}

type authService struct {
	users    repository.UserRepository
	tokenTTL time.Duration
	logger   *slog.Logger
}

func NewAuthService(users repository.UserRepository, tokenTTL time.Duration, logger *slog.Logger) AuthService {
	return &authService{
		users:    users,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (a *authService) Register(username, password string) (*entity.User, error) {
	if username == "" || utf8.RuneCountInString(username) > 100 {
		return nil, validationf("Username must be between 1 and 100 characters.")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, validationf("Password must be at least %d characters.", minPasswordLength)
	}

	existing, err := a.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflictf("Username %s is already taken.", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Secret:   entity.UserSecret{Hash: string(hash)},
	}
	if err := a.users.Create(user); err != nil {
		return nil, err
	}

	a.logger.Info("user registered", "id", user.ID, "username", user.Username)
	return user, nil
}

func (a *authService) Login(username, password string) (*Session, error) {
	user, err := a.users.GetWithSecret(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Secret.Hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &entity.UserSession{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(a.tokenTTL),
	}
	if err := a.users.CreateSession(session); err != nil {
		return nil, err
	}

	a.logger.Info("user logged in", "username", user.Username)
	return &Session{
		Token:     session.Token,
		Username:  user.Username,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (a *authService) Logout(token string) error {
	return a.users.DeleteSession(token)
}

func (a *authService) ResolveToken(token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}
	session, err := a.users.GetSessionByToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return &Identity{UserID: session.UserID}, nil
}
