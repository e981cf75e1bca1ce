package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// AuthService registers accounts, logs users in and resolves the user named
// by a validated token.
type AuthService interface {
	// Register creates a USER-role account. Returns store.ErrUsernameExists
	// when the username is taken.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// Login returns a signed token for valid credentials. Returns
	// store.ErrUserNotFound for an unknown username and
	// auth.ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, username, password string) (string, error)

	// ResolveCurrentUser loads the user a token was issued for. Returns
	// store.ErrUserNotFound if the account no longer exists.
	ResolveCurrentUser(ctx context.Context, username string) (*domain.User, error)
}

type authService struct {
	db     *sql.DB
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
	logger *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	db *sql.DB,
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) (AuthService, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if users == nil || hasher == nil || tokens == nil {
		return nil, errors.New("user store, password hasher and JWT service are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authService{
		db:     db,
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "auth_service"),
	}, nil
}

// Register implements AuthService. The existence probe and the insert share
// one transaction; a concurrent insert that wins the race still surfaces as
// store.ErrUsernameExists through the unique index.
func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.NewValidationError("username", "cannot be empty", nil)
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "cannot be empty", nil)
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, domain.NewValidationError("password", "is too long", nil)
	}

	var user *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.users.WithTx(tx)

		_, err := txUsers.GetByUsername(ctx, username)
		switch {
		case err == nil:
			return store.ErrUsernameExists
		case !errors.Is(err, store.ErrUserNotFound):
			return fmt.Errorf("failed to check username: %w", err)
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}

		user, err = domain.NewUser(username, hash)
		if err != nil {
			return err
		}

		return txUsers.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.DebugContext(ctx, "registration with existing username", "username", username)
		} else {
			s.logger.ErrorContext(ctx, "failed to register user", "error", err, "username", username)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login implements AuthService.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.DebugContext(ctx, "login for unknown username", "username", username)
		} else {
			s.logger.ErrorContext(ctx, "failed to load user for login", "error", err, "username", username)
		}
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.DebugContext(ctx, "login with wrong password", "user_id", user.ID)
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	token, err := s.tokens.GenerateToken(ctx, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return token, nil
}

// ResolveCurrentUser implements AuthService.
func (s *authService) ResolveCurrentUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}
	return user, nil
}
