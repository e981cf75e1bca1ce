package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Role is the authorization role attached to a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// MaxUsernameLength bounds the username column, in characters.
const MaxUsernameLength = 64

// User represents a registered account. Usernames are unique and compared
// case-sensitively.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser creates a USER-role account for username with an already hashed
// password. Hashing is the caller's job so the domain stays free of crypto.
func NewUser(username, passwordHash string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if strings.TrimSpace(u.Username) == "" {
		return NewValidationError("username", "cannot be empty", nil)
	}

	if utf8.RuneCountInString(u.Username) > MaxUsernameLength {
		return NewValidationError("username", "is too long", nil)
	}

	if u.PasswordHash == "" {
		return NewValidationError("passwordHash", "cannot be empty", nil)
	}

	if !u.Role.IsValid() {
		return NewValidationError("role", "is not recognized", ErrInvalidRole)
	}

	return nil
}
