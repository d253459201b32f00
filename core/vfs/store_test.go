package vfs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_roundTrip(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.WriteFile(ctx, "ws", "notes.txt", "hello\n"))

	content, err := store.ReadFile(ctx, "ws", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", content)
}

func TestStore_readMissingIsErrNotFound(t *testing.T) {
	store := NewMemStore()

	_, err := store.ReadFile(context.Background(), "ws", "nope.txt")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_writeCreatesParents(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.WriteFile(ctx, "ws", "a/b/c.txt", "deep"))

	content, err := store.ReadFile(ctx, "ws", "a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "deep", content)
}

func TestStore_listSortsAndMarksDirectories(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.WriteFile(ctx, "ws", "zebra.txt", ""))
	require.NoError(t, store.WriteFile(ctx, "ws", "apple.txt", ""))
	require.NoError(t, store.WriteFile(ctx, "ws", "sub/child.txt", ""))

	entries, err := store.ListFiles(ctx, "ws", ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple.txt", "sub/", "zebra.txt"}, entries)
}

func TestStore_listMissingDirectory(t *testing.T) {
	store := NewMemStore()

	_, err := store.ListFiles(context.Background(), "ws", "nowhere")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_delete(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.WriteFile(ctx, "ws", "gone.txt", "x"))
	require.NoError(t, store.DeleteFile(ctx, "ws", "gone.txt"))

	exists, err := store.FileExists(ctx, "ws", "gone.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.True(t, errors.Is(store.DeleteFile(ctx, "ws", "gone.txt"), ErrNotFound))
}

func TestStore_fileExistsIsFalseForDirectories(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.WriteFile(ctx, "ws", "dir/file.txt", "x"))

	exists, err := store.FileExists(ctx, "ws", "dir")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = store.FileExists(ctx, "ws", "dir/file.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_workspacesAreIsolated(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.WriteFile(ctx, "alpha", "secret.txt", "alpha only"))

	_, err := store.ReadFile(ctx, "beta", "secret.txt")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_cancelledContext(t *testing.T) {
	store := NewMemStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ReadFile(ctx, "ws", "any.txt")
	assert.ErrorIs(t, err, context.Canceled)
}
