package users

import "context"

// Repository is the user directory. It is the source of truth for username
// uniqueness: Create must perform its duplicate check and the insert
// atomically. No update or delete operations exist.
type Repository interface {
	// Exists reports whether a user with the given username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByID returns the user with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*User, error)

	// Create inserts a new user, assigning its ID and CreatedAt. Returns
	// common.ErrUsernameTaken if the username is already registered.
	Create(ctx context.Context, user *User) (*User, error)

	// List returns all users in creation order. Entries still carry the
	// password hash; stripping it is the caller's concern.
	List(ctx context.Context) ([]*User, error)
}
