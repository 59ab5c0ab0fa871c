// Package users implements the user directory: the record store, the
// credential service (login/signup), and administrative directory mutation.
package users

import "time"

// Role determines what a user is authorized to do. It is a small closed
// enumeration; authorization checkpoints must switch over it exhaustively.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Status is an administrative flag on an account. It does not gate login.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// User is one account in the directory.
//
// ID is assigned at creation and immutable thereafter. Email is unique across
// all users (exact, case-sensitive comparison). PasswordHash is a bcrypt hash;
// the plaintext password is never stored. LastLogin is set at creation and
// refreshed on every successful login.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	Status       Status
	LastLogin    time.Time
}

// Clone returns an independent copy of u. The repository hands out clones so
// callers can never alias store internals.
func (u *User) Clone() *User {
	c := *u
	return &c
}
