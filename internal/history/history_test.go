// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "name-desc", []string{"aura"}, 12))
	require.NoError(t, s.Record(ctx, "maintainer", []string{"falconindy"}, 3))

	entries, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "maintainer", entries[0].SearchBy)
	assert.Equal(t, []string{"falconindy"}, entries[0].Terms)
	assert.Equal(t, 3, entries[0].ResultCount)
	assert.Equal(t, "name-desc", entries[1].SearchBy)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, "name", []string{"term"}, i))
	}

	entries, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 4, entries[0].ResultCount)
}

func TestRecordMultipleTerms(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "name-desc", []string{"aura", "pacman"}, 40))

	entries, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"aura", "pacman"}, entries[0].Terms)
}

func TestRecentEmptyStore(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(context.Background(), "name", []string{"x"}, 0))
}
