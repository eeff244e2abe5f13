package graph

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/wayfind/api"
)

func buildSample(t *testing.T) *MemoryGraph {
	t.Helper()
	g := NewMemoryGraph()
	docs, err := g.AddNode(g.Root(), "docs")
	require.NoError(t, err)
	_, err = g.AddNode(docs, "about")
	require.NoError(t, err)
	_, err = g.AddLeaf(docs, "logo.png")
	require.NoError(t, err)
	_, err = g.AddNode(g.Root(), "cms")
	require.NoError(t, err)
	return g
}

func child(t *testing.T, r api.Resource, name string) api.Resource {
	t.Helper()
	lookup, ok := r.(api.ChildLookup)
	require.True(t, ok, "%q should be child-lookup capable", r.Name())
	c, ok := lookup.Child(name)
	require.True(t, ok, "child %q should exist", name)
	return c
}

func TestSQLiteGraph_SaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")
	require.NoError(t, SaveSQLite(path, buildSample(t)))

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	root := s.Root()
	assert.Equal(t, "", root.Name())
	assert.Nil(t, root.Parent())

	docs := child(t, root, "docs")
	about := child(t, docs, "about")
	assert.Equal(t, "about", about.Name())
	assert.Equal(t, docs, about.Parent())

	logo := child(t, docs, "logo.png")
	_, lookupOK := logo.(api.ChildLookup)
	assert.False(t, lookupOK, "leaf flag should survive the round trip")

	child(t, root, "cms")
}

func TestSQLiteGraph_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")
	require.NoError(t, SaveSQLite(path, buildSample(t)))

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	oldRoot := s.Root()

	// Rewrite the table with an extra node, then reload.
	next := buildSample(t)
	_, err = next.AddNode(next.Root(), "news")
	require.NoError(t, err)
	require.NoError(t, SaveSQLite(path, next))
	require.NoError(t, s.Reload())

	child(t, s.Root(), "news")

	// Handles from before the reload keep pointing at the old arena.
	_, ok := oldRoot.(api.ChildLookup).Child("news")
	assert.False(t, ok)
}

func TestSQLiteGraph_SaveReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")
	require.NoError(t, SaveSQLite(path, buildSample(t)))

	small := NewMemoryGraph()
	_, err := small.AddNode(small.Root(), "only")
	require.NoError(t, err)
	require.NoError(t, SaveSQLite(path, small))

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	_, ok := s.Root().(api.ChildLookup).Child("docs")
	assert.False(t, ok, "old contents should be gone")
	child(t, s.Root(), "only")
}
