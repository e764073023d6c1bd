package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Add(Entry{Name: "First", Slug: "first", Port: 8000, Database: "sqlite"}))
	require.NoError(t, Add(Entry{Name: "Second", Slug: "second", Port: 9090, Database: "postgresql"}))

	entries, err := Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent first.
	assert.Equal(t, "second", entries[0].Slug)
	assert.Equal(t, "first", entries[1].Slug)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestLoadEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	entries, err := Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPrune(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	old := Entry{Name: "Old", Slug: "old", CreatedAt: time.Now().AddDate(0, 0, -60)}
	recent := Entry{Name: "New", Slug: "new", CreatedAt: time.Now()}
	require.NoError(t, Save([]Entry{recent, old}))

	require.NoError(t, Prune(30))

	entries, err := Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].Slug)
}
