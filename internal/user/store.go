package user

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDuplicateEmail is returned by Create when the email is already
	// registered (case-insensitive).
	ErrDuplicateEmail = errors.New("email already in use")
)

// Store persists user records. Lookups that find nothing return (nil, nil);
// an error always means the store itself failed.
type Store interface {
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByResetToken matches an exact token whose expiry is after now.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*User, error)

	// Create inserts a new user, assigning its ID. Fails with
	// ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, u *User) error

	// Save persists mutations to an existing user (password hash and
	// reset-token fields) in one write.
	Save(ctx context.Context, u *User) error
}
