package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "session.db")
	repo, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSetGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, "abc.def.ghi"))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", got)
}

func TestSet_Overwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyEmail, "old@example.com"))
	require.NoError(t, repo.Set(ctx, KeyEmail, "new@example.com"))

	got, err := repo.Get(ctx, KeyEmail)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", got)
}

func TestGet_MissingKeyIsEmpty(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestClear(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, "abc"))
	require.NoError(t, repo.Set(ctx, KeyEmail, "alice@example.com"))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, "abc"))
	require.NoError(t, repo.Delete(ctx, KeyToken))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Empty(t, got)
}
