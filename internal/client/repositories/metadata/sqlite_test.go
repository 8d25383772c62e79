package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metadata_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM metadata;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetMissingKeyReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), "token")
	require.NoError(t, err)
	require.Nil(t, v, "absent key means logged out, not an error")
}

func TestSQLiteRepository_SetThenGet(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))

	v, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)

	// Upsert overwrites.
	require.NoError(t, repo.Set(ctx, "token", []byte("def")))
	v, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("def"), v)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))
	require.NoError(t, repo.Set(ctx, "other", []byte("x")))

	require.NoError(t, repo.Delete(ctx, "token"))
	v, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Nil(t, v)

	// Deleting a missing key is a no-op.
	require.NoError(t, repo.Delete(ctx, "token"))

	require.NoError(t, repo.Clear(ctx))
	v, err = repo.Get(ctx, "other")
	require.NoError(t, err)
	require.Nil(t, v)
}
