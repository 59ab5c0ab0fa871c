package users

import (
	"context"
	"sync"

	"github.com/dkhromov/docboard/internal/common"
)

// MemoryRepository is a mutex-guarded, slice-backed Repository. The slice
// preserves insertion order; new accounts append to the end.
type MemoryRepository struct {
	mu    sync.Mutex
	users []*User
}

// NewMemoryRepository constructs a repository pre-populated with clones of
// the given seed records.
func NewMemoryRepository(seed ...*User) *MemoryRepository {
	r := &MemoryRepository{users: make([]*User, 0, len(seed))}
	for _, u := range seed {
		r.users = append(r.users, u.Clone())
	}
	return r
}

func (r *MemoryRepository) List(ctx context.Context) ([]*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrDuplicateEmail
		}
	}

	stored := user.Clone()
	r.users = append(r.users, stored)
	return stored.Clone(), nil
}

func (r *MemoryRepository) Update(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID != user.ID && u.Email == user.Email {
			return nil, common.ErrDuplicateEmail
		}
	}

	for i, u := range r.users {
		if u.ID == user.ID {
			stored := user.Clone()
			r.users[i] = stored
			return stored.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}
