package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthService_RequiresDependencies(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	users := mocks.NewMockUserStore()
	hasher := &mocks.MockPasswordHasher{}
	tokens := &mocks.MockJWTService{}

	_, err := NewAuthService(nil, users, hasher, tokens, nil)
	assert.Error(t, err)
	_, err = NewAuthService(db, nil, hasher, tokens, nil)
	assert.Error(t, err)
	_, err = NewAuthService(db, users, nil, tokens, nil)
	assert.Error(t, err)

	svc, err := NewAuthService(db, users, hasher, tokens, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates user with hashed password", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		users := mocks.NewMockUserStore()
		svc, err := NewAuthService(db, users, &mocks.MockPasswordHasher{}, &mocks.MockJWTService{}, testLogger())
		require.NoError(t, err)

		user, err := svc.Register(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, "hashed:secret", user.PasswordHash)
		assert.NotEqual(t, "secret", user.PasswordHash)
		assert.Same(t, user, users.Users["alice"])
	})

	t.Run("rejects taken username", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		existing, err := domain.NewUser("alice", "hashed:old")
		require.NoError(t, err)
		users := mocks.NewMockUserStore(existing)
		users.CreateFn = func(context.Context, *domain.User) error {
			t.Fatal("Create must not be called for a taken username")
			return nil
		}

		svc, err := NewAuthService(db, users, &mocks.MockPasswordHasher{}, &mocks.MockJWTService{}, testLogger())
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, store.ErrUsernameExists)
		assert.Same(t, existing, users.Users["alice"])
	})

	t.Run("unique violation race reports duplicate", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		users := mocks.NewMockUserStore()
		users.CreateFn = func(context.Context, *domain.User) error {
			return store.ErrUsernameExists
		}
		svc, err := NewAuthService(db, users, &mocks.MockPasswordHasher{}, &mocks.MockJWTService{}, testLogger())
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("hash failure rolls back", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		hashErr := errors.New("bcrypt exploded")
		hasher := &mocks.MockPasswordHasher{HashFn: func(string) (string, error) { return "", hashErr }}
		users := mocks.NewMockUserStore()
		svc, err := NewAuthService(db, users, hasher, &mocks.MockJWTService{}, testLogger())
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, hashErr)
		assert.Empty(t, users.Users)
	})

	t.Run("blank input is a validation error", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		svc, err := NewAuthService(db, mocks.NewMockUserStore(), &mocks.MockPasswordHasher{}, &mocks.MockJWTService{}, testLogger())
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "  ", "secret")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.Register(context.Background(), "alice", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("password longer than bcrypt accepts", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		users := mocks.NewMockUserStore()
		svc, err := NewAuthService(db, users, auth.NewBcryptHasher(4), &mocks.MockJWTService{}, testLogger())
		require.NoError(t, err)

		// 72 characters but 144 bytes.
		_, err = svc.Register(context.Background(), "alice", strings.Repeat("é", 72))
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "password", validationErr.Field)
		assert.Equal(t, "is too long", validationErr.Message)
		assert.Empty(t, users.Users)
	})

	t.Run("password at the byte limit is accepted", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()
		svc, err := NewAuthService(db, mocks.NewMockUserStore(), auth.NewBcryptHasher(4), &mocks.MockJWTService{}, testLogger())
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "alice", strings.Repeat("é", 36))
		assert.NoError(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("alice", "hashed:secret")
	require.NoError(t, err)

	tests := []struct {
		name      string
		username  string
		password  string
		wantToken string
		wantErr   error
	}{
		{name: "valid credentials", username: "alice", password: "secret", wantToken: "signed-token"},
		{name: "unknown user", username: "bob", password: "secret", wantErr: store.ErrUserNotFound},
		{name: "wrong password", username: "alice", password: "nope", wantErr: auth.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			db, _ := newMockDB(t)

			var issuedFor string
			tokens := &mocks.MockJWTService{
				GenerateTokenFn: func(_ context.Context, username string) (string, error) {
					issuedFor = username
					return "signed-token", nil
				},
			}
			svc, err := NewAuthService(db, mocks.NewMockUserStore(user), &mocks.MockPasswordHasher{}, tokens, testLogger())
			require.NoError(t, err)

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Empty(t, issuedFor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, "alice", issuedFor)
		})
	}
}

func TestAuthService_LoginWithRealTokens(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	hasher := auth.NewBcryptHasher(4)
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	user, err := domain.NewUser("alice", hash)
	require.NoError(t, err)

	tokens := auth.NewTestJWTService("test-secret-that-is-long-enough-for-testing", time.Hour, nil)
	svc, err := NewAuthService(db, mocks.NewMockUserStore(user), hasher, tokens, testLogger())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	resolved, err := svc.ResolveCurrentUser(context.Background(), claims.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestAuthService_ResolveCurrentUser_Deleted(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	svc, err := NewAuthService(db, mocks.NewMockUserStore(), &mocks.MockPasswordHasher{}, &mocks.MockJWTService{}, testLogger())
	require.NoError(t, err)

	_, err = svc.ResolveCurrentUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
