// Command hash-generator prints a bcrypt hash for a password and, when a
// username is given, an INSERT statement that seeds the account. It is the
// only way to create ADMIN users.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "hash-generator:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hash-generator", flag.ContinueOnError)
	password := fs.String("password", "", "Password to hash (required)")
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	username := fs.String("username", "", "Emit an INSERT for this username")
	role := fs.String("role", string(domain.RoleAdmin), "Role for the INSERT (USER or ADMIN)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		return errors.New("-password is required")
	}

	hash, err := auth.NewBcryptHasher(*cost).Hash(*password)
	if err != nil {
		return err
	}

	if *username == "" {
		_, err = fmt.Fprintln(out, hash)
		return err
	}

	r := domain.Role(strings.ToUpper(*role))
	user := &domain.User{
		ID:           uuid.New(),
		Username:     *username,
		PasswordHash: hash,
		Role:         r,
	}
	if err := validateSeed(user); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out,
		"INSERT INTO users (id, username, password_hash, role) VALUES ('%s', '%s', '%s', '%s');\n",
		user.ID, strings.ReplaceAll(user.Username, "'", "''"), user.PasswordHash, user.Role)
	return err
}

func validateSeed(user *domain.User) error {
	if !user.Role.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRole, user.Role)
	}
	return user.Validate()
}
