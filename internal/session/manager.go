package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dkhromov/docboard/internal/logging"
	"github.com/dkhromov/docboard/internal/users"
)

// storageKey is the fixed durable-storage key holding the serialized session.
const storageKey = "user"

// Snapshot is the durable form of the authenticated identity: a JSON
// serialization of the user record minus the password hash.
type Snapshot struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Role      users.Role   `json:"role"`
	Status    users.Status `json:"status"`
	LastLogin time.Time    `json:"lastLogin"`
}

func (s *Snapshot) valid() bool {
	return s.ID != "" && s.Email != "" && s.Role.Valid()
}

// Manager holds the current session. There is at most one session per
// running instance; it is only ever replaced wholesale, never patched.
type Manager struct {
	store   Store
	log     logging.Logger
	current *Snapshot
}

func NewManager(store Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Restore attempts to load a previously persisted session. It runs exactly
// once per application start, before any command executes.
//
// An absent entry leaves the session empty. An entry that does not parse as
// a valid record also leaves the session empty and removes the corrupt value
// from storage; no error is surfaced to the user.
func (m *Manager) Restore(ctx context.Context) error {
	raw, err := m.store.Get(ctx, storageKey)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil || !snap.valid() {
		m.log.Warn(ctx, "discarding unreadable stored session", "err", err)
		return m.store.Delete(ctx, storageKey)
	}

	m.current = &snap
	m.log.Debug(ctx, "session restored", "email", snap.Email)
	return nil
}

// Set replaces the session with the given user and persists the snapshot.
func (m *Manager) Set(ctx context.Context, u *users.User) error {
	snap := &Snapshot{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		LastLogin: u.LastLogin,
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, storageKey, raw); err != nil {
		return err
	}

	m.current = snap
	return nil
}

// Clear empties the session and removes the durable entry. The in-memory
// session is cleared even if the storage delete fails.
func (m *Manager) Clear(ctx context.Context) error {
	m.current = nil
	return m.store.Delete(ctx, storageKey)
}

// Current returns a copy of the active session, or nil when logged out.
func (m *Manager) Current() *Snapshot {
	if m.current == nil {
		return nil
	}
	c := *m.current
	return &c
}
