package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhromov/docboard/internal/common"
)

func testUser(id, email string) *User {
	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: "x",
		Role:         RoleUser,
		Status:       StatusActive,
		LastLogin:    time.Now(),
	}
}

func TestMemoryRepository_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(testUser("1", "a@example.com"), testUser("2", "b@example.com"))

	_, err := repo.Create(ctx, testUser("3", "c@example.com"))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a@example.com", list[0].Email)
	assert.Equal(t, "b@example.com", list[1].Email)
	assert.Equal(t, "c@example.com", list[2].Email)
}

func TestMemoryRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(testUser("1", "a@example.com"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Email = "mutated@example.com"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", again[0].Email)
}

func TestMemoryRepository_GetByEmail_ExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(testUser("1", "a@example.com"))

	u, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	// Matching is case-sensitive.
	_, err = repo.GetByEmail(ctx, "A@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(testUser("1", "a@example.com"))

	_, err := repo.Create(ctx, testUser("2", "a@example.com"))
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(testUser("1", "a@example.com"))

	u, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	u.Status = StatusInactive

	updated, err := repo.Update(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, updated.Status)

	stored, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, stored.Status)
}

func TestMemoryRepository_Update_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(testUser("1", "a@example.com"), testUser("2", "b@example.com"))

	u, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	u.Email = "a@example.com"

	_, err = repo.Update(ctx, u)
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	stored, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", stored.Email)
}

func TestMemoryRepository_Update_KeepingOwnEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(testUser("1", "a@example.com"))

	u, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	u.Status = StatusInactive

	// Writing the record back under its own email is not a duplicate.
	_, err = repo.Update(ctx, u)
	require.NoError(t, err)
}

func TestMemoryRepository_Update_Missing(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Update(ctx, testUser("nope", "a@example.com"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryRepository_SeedIsCopied(t *testing.T) {
	ctx := context.Background()
	seed := testUser("1", "a@example.com")
	repo := NewMemoryRepository(seed)

	seed.Email = "mutated@example.com"

	u, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)
}
