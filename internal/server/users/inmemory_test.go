package users

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servtech/authd/internal/common"
)

func TestInMemory_CreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	a, err := repo.Create(ctx, &User{Username: "alice1", PasswordHash: "h", Role: RoleUser})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &User{Username: "bob_22", PasswordHash: "h", Role: RoleUser})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestInMemory_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	_, err := repo.Create(ctx, &User{Username: "alice1", PasswordHash: "h", Role: RoleUser})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &User{Username: "alice1", PasswordHash: "other", Role: RoleAdmin})
	assert.ErrorIs(t, err, common.ErrUsernameTaken)

	// A failed create must not consume an id.
	c, err := repo.Create(ctx, &User{Username: "carol3", PasswordHash: "h", Role: RoleUser})
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)
}

func TestInMemory_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	created, err := repo.Create(ctx, &User{Username: "alice1", PasswordHash: "h", Role: RoleAdmin})
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, "alice1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	byName, err := repo.GetByUsername(ctx, "alice1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, RoleAdmin, byName.Role)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice1", byID.Username)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	created, err := repo.Create(ctx, &User{Username: "alice1", PasswordHash: "h", Role: RoleUser})
	require.NoError(t, err)

	created.Username = "mutated"
	created.PasswordHash = "mutated"

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice1", stored.Username)
	assert.Equal(t, "h", stored.PasswordHash)
}

func TestInMemory_ListInCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	for _, name := range []string{"alice1", "bob_22", "carol3"} {
		_, err := repo.Create(ctx, &User{Username: name, PasswordHash: "h", Role: RoleUser})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alice1", list[0].Username)
	assert.Equal(t, "bob_22", list[1].Username)
	assert.Equal(t, "carol3", list[2].Username)
}

func TestInMemory_ConcurrentCreateSameUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &User{Username: "alice1", PasswordHash: "h", Role: RoleUser})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, common.ErrUsernameTaken):
			dup++
		}
	}
	assert.Equal(t, 1, ok, "exactly one concurrent create may win")
	assert.Equal(t, workers-1, dup)
}
