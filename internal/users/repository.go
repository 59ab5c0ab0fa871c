package users

import "context"

// Repository is the record store for user accounts. It is the single source
// of truth; every returned record is a defensive copy, and List preserves
// insertion order. Implementations enforce email uniqueness on Create and
// Update, so at any time exactly one record holds a given email.
type Repository interface {
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	// Update replaces the stored record with the same ID wholesale. Moving
	// the record to an email already held by another account fails with
	// common.ErrDuplicateEmail and leaves the store unchanged.
	Update(ctx context.Context, user *User) (*User, error)
}
