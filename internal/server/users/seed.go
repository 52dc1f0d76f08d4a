package users

import (
	"context"
	"fmt"

	"github.com/servtech/authd/internal/server/password"
)

// Seed inserts the two fixture accounts ("admin" and "user") sharing the
// given plaintext password. This is a development convenience, enabled by
// configuration; it must not run in production.
func Seed(ctx context.Context, repo Repository, hasher *password.Hasher, plaintext string) error {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	fixtures := []User{
		{Username: "admin", PasswordHash: hash, Role: RoleAdmin},
		{Username: "user", PasswordHash: hash, Role: RoleUser},
	}

	for _, u := range fixtures {
		if _, err := repo.Create(ctx, &u); err != nil {
			return fmt.Errorf("seed %q: %w", u.Username, err)
		}
	}
	return nil
}
