package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dkhromov/docboard/internal/common"
)

// MinPasswordLength is the signup password policy.
const MinPasswordLength = 6

// NewUser is the input to Signup.
type NewUser struct {
	Email    string
	Password string
	Role     Role
}

// Update is the input to the directory mutation operation. Password is
// optional: when empty, the stored password is kept unchanged.
type Update struct {
	ID       string
	Email    string
	Password string
	Role     Role
	Status   Status
}

// Service defines credential and directory operations over the record store.
//
// Contract:
//   - Login: validate credentials, refresh LastLogin, return a copy.
//   - Signup: enforce email uniqueness and the password policy, append.
//   - Update: replace mutable fields of an existing record by ID,
//     preserving LastLogin exactly.
//   - List: snapshot of the store in insertion order.
//
// Every call starts with an artificial latency that honors context
// cancellation. Failures are reported with the sentinel errors in
// internal/common and are terminal for the invocation.
type Service interface {
	Login(ctx context.Context, email, password string) (*User, error)
	Signup(ctx context.Context, nu NewUser) (*User, error)
	Update(ctx context.Context, upd Update) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type service struct {
	repo    Repository
	latency time.Duration
}

// NewService constructs a Service bound to the given record store. latency
// is the simulated per-call delay; pass 0 to disable it.
func NewService(repo Repository, latency time.Duration) Service {
	return &service{repo: repo, latency: latency}
}

// Login performs an exact, case-sensitive email lookup and verifies the
// password against the stored bcrypt hash. An unknown email and a wrong
// password are indistinguishable to the caller: both yield
// common.ErrInvalidCredentials.
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	if err := common.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("refreshing last login: %w", err)
	}
	return updated, nil
}

// Signup creates a new account. The uniqueness check is evaluated before the
// password policy; only the first failing precondition is reported. A failed
// signup never mutates the store.
func (s *service) Signup(ctx context.Context, nu NewUser) (*User, error) {
	if err := common.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, nu.Email); err == nil {
		return nil, common.ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("checking email uniqueness: %w", err)
	}

	if len(nu.Password) < MinPasswordLength {
		return nil, common.ErrWeakPassword
	}

	if !nu.Role.Valid() {
		return nil, fmt.Errorf("invalid role %q", nu.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        nu.Email,
		PasswordHash: string(hash),
		Role:         nu.Role,
		Status:       StatusActive,
		LastLogin:    time.Now(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return created, nil
}

// Update replaces email, role, and status of the record with upd.ID. Moving
// the record to an email already held by another account fails with
// common.ErrDuplicateEmail. The password is re-hashed only when upd.Password
// is non-empty; LastLogin is preserved exactly as it was before the call.
func (s *service) Update(ctx context.Context, upd Update) (*User, error) {
	if err := common.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, upd.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !upd.Role.Valid() {
		return nil, fmt.Errorf("invalid role %q", upd.Role)
	}
	if !upd.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q", upd.Status)
	}

	existing.Email = upd.Email
	existing.Role = upd.Role
	existing.Status = upd.Status
	if upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		existing.PasswordHash = string(hash)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return updated, nil
}

// List returns a snapshot of the whole directory in insertion order.
// No filtering, sorting, or pagination.
func (s *service) List(ctx context.Context) ([]*User, error) {
	if err := common.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}
