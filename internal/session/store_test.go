package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveGet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	s := New(strings.Repeat("f", 50), uuid.New())
	s.UpdateTrace("Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0", "10.1.1.1")

	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.SID)
	require.NoError(t, err)
	assert.Equal(t, s.SID, got.SID)
	assert.Equal(t, s.UID, got.UID)
	assert.Equal(t, s.Trace.Platform, got.Trace.Platform)

	_, err = store.Get(ctx, "ffmissing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestValidSID(t *testing.T) {
	assert.True(t, ValidSID(NewSID()))
	assert.True(t, ValidSID("aZ"))
	assert.True(t, ValidSID("a0-_"))

	assert.False(t, ValidSID(""))
	assert.False(t, ValidSID("a"))
	assert.False(t, ValidSID("xx/../escape"))
	assert.False(t, ValidSID("xx\\windows"))
	assert.False(t, ValidSID("aa=="))
	assert.False(t, ValidSID("aa bb"))
}

func TestFileStore_RejectsMalformedSID(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "sessions")
	store, err := NewFileStore(root)
	require.NoError(t, err)

	ctx := context.Background()

	// Shorter than the shard prefix. Must not panic.
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// A SID carrying path traversal must never reach the filesystem.
	sid := "xx" + strings.Repeat("/..", 10) + base + "/evil"
	err = store.Save(ctx, New(sid, uuid.New()))
	assert.ErrorIs(t, err, ErrInvalidSID)

	_, err = os.Stat(filepath.Join(base, "evil"))
	assert.True(t, os.IsNotExist(err), "nothing may land outside the store root")

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sessions", entries[0].Name())

	_, err = store.Get(ctx, sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.Equal(t, 0, store.DeleteFromIdentifiers(ctx, []string{"xx/.."}))
}

func TestFileStore_DeleteFromIdentifiers(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	sid := strings.Repeat("d", 64)
	other := strings.Repeat("x", 64)

	require.NoError(t, store.Save(ctx, New(sid, uuid.New())))
	require.NoError(t, store.Save(ctx, New(other, uuid.New())))

	// Deleting by identifier removes every file sharing the prefix.
	deleted := store.DeleteFromIdentifiers(ctx, []string{Identifier(sid)})
	assert.Equal(t, 1, deleted)

	_, err = os.Stat(filepath.Join(dir, sid[:2], sid))
	assert.True(t, os.IsNotExist(err))

	_, err = store.Get(ctx, other)
	assert.NoError(t, err, "unrelated sessions must survive")

	// Missing entries are not errors.
	deleted = store.DeleteFromIdentifiers(ctx, []string{Identifier(sid), "zz-never-existed"})
	assert.Equal(t, 0, deleted)
}
