package session

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dkhromov/docboard/internal/logging"
	"github.com/dkhromov/docboard/internal/users"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newManager(t *testing.T) (*Manager, *SQLiteStore) {
	t.Helper()
	store := NewSQLiteStore(setupDB(t))
	return NewManager(store, discardLogger()), store
}

func insertRaw(t *testing.T, store *SQLiteStore, v []byte) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), "user", v))
}

// ---- SQLiteStore ----

func TestSQLiteStore_GetAbsentKey(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))

	v, err := store.Get(context.Background(), "user")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Set(ctx, "user", []byte("one")))
	require.NoError(t, store.Set(ctx, "user", []byte("two")))

	v, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Set(ctx, "user", []byte("one")))
	require.NoError(t, store.Delete(ctx, "user"))

	v, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, v)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "user"))
}

// ---- Manager ----

func TestManager_Restore_EmptyStorage(t *testing.T) {
	m, _ := newManager(t)

	require.NoError(t, m.Restore(context.Background()))
	assert.Nil(t, m.Current())
}

func TestManager_SetRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)

	u := &users.User{
		ID:           "1",
		Email:        "admin@example.com",
		PasswordHash: "hash",
		Role:         users.RoleAdmin,
		Status:       users.StatusActive,
		LastLogin:    time.Now().UTC(),
	}
	require.NoError(t, m.Set(ctx, u))

	// A fresh manager over the same storage restores the same identity.
	m2 := NewManager(store, discardLogger())
	require.NoError(t, m2.Restore(ctx))

	got := m2.Current()
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.Role, got.Role)
}

func TestManager_SnapshotOmitsPasswordHash(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)

	require.NoError(t, m.Set(ctx, &users.User{
		ID:           "1",
		Email:        "a@example.com",
		PasswordHash: "topsecret",
		Role:         users.RoleUser,
		Status:       users.StatusActive,
	}))

	raw, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "topsecret")
}

func TestManager_Restore_CorruptEntrySelfHeals(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)
	insertRaw(t, store, []byte("{not json"))

	require.NoError(t, m.Restore(ctx))
	assert.Nil(t, m.Current())

	// The corrupt entry was removed from storage.
	v, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestManager_Restore_InvalidRecordSelfHeals(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)

	// Valid JSON, but not a valid session record.
	insertRaw(t, store, []byte(`{"id":"","email":""}`))

	require.NoError(t, m.Restore(ctx))
	assert.Nil(t, m.Current())

	v, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestManager_Clear(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)

	require.NoError(t, m.Set(ctx, &users.User{
		ID:     "1",
		Email:  "a@example.com",
		Role:   users.RoleUser,
		Status: users.StatusActive,
	}))
	require.NoError(t, m.Clear(ctx))

	assert.Nil(t, m.Current())
	v, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestManager_CurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.Set(ctx, &users.User{
		ID:     "1",
		Email:  "a@example.com",
		Role:   users.RoleUser,
		Status: users.StatusActive,
	}))

	got := m.Current()
	got.Email = "mutated@example.com"

	assert.Equal(t, "a@example.com", m.Current().Email)
}

func TestInitDatabase_MigratesAndStores(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, t.TempDir()+"/session.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteStore(db)
	require.NoError(t, store.Set(ctx, "user", []byte(`{"k":"v"}`)))

	v, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"v"}`, string(v))
}
