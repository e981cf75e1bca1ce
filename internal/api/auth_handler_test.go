package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) shared.Envelope {
	t.Helper()
	var env shared.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			body:        `{"username":"alice","password":"s3cret"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "user registered successfully",
		},
		{
			name:        "duplicate username",
			body:        `{"username":"alice","password":"s3cret"}`,
			registerErr: fmt.Errorf("failed to register user: %w", store.ErrUsernameExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username already taken",
		},
		{
			name:        "missing password",
			body:        `{"username":"alice"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid password: required field",
		},
		{
			name:        "malformed json",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "unexpected failure",
			body:        `{"username":"alice","password":"s3cret"}`,
			registerErr: fmt.Errorf("failed to register user: %w", context.DeadlineExceeded),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to register user",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeAuthService{
				RegisterFn: func(_ context.Context, username, password string) (*domain.User, error) {
					if tc.registerErr != nil {
						return nil, tc.registerErr
					}
					return domain.NewUser(username, "hash:"+password)
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			api.NewAuthHandler(svc).Register(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tc.wantStatus, env.StatusCode)
			assert.Equal(t, tc.wantMessage, env.Message)
			assert.Nil(t, env.Data)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		loginErr    error
		wantStatus  int
		wantMessage string
		wantData    any
	}{
		{
			name:        "success",
			wantStatus:  http.StatusOK,
			wantMessage: "login successful",
			wantData:    "signed.jwt.token",
		},
		{
			name:        "unknown user",
			loginErr:    fmt.Errorf("failed to log in: %w", store.ErrUserNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found",
		},
		{
			name:        "wrong password",
			loginErr:    fmt.Errorf("failed to log in: %w", auth.ErrInvalidCredentials),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid password",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeAuthService{
				LoginFn: func(_ context.Context, username, password string) (string, error) {
					assert.Equal(t, "alice", username)
					assert.Equal(t, "s3cret", password)
					if tc.loginErr != nil {
						return "", tc.loginErr
					}
					return "signed.jwt.token", nil
				},
			}

			body := `{"username":"alice","password":"s3cret"}`
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
			rec := httptest.NewRecorder()
			api.NewAuthHandler(svc).Login(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tc.wantMessage, env.Message)
			assert.Equal(t, tc.wantData, env.Data)
		})
	}
}
