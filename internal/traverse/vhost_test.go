package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/wayfind/api"
)

func TestVirtualRoot_FastPath(t *testing.T) {
	g := buildSite(t)
	team := lookup(t, g.Root(), "docs", "about", "team")

	// The request already carries the physical root: no lineage walk.
	got, err := VirtualRoot(team, &api.Request{Root: g.Root()})
	require.NoError(t, err)
	assert.Equal(t, g.Root(), got)
}

func TestVirtualRoot_HeaderResolution(t *testing.T) {
	g := buildSite(t)
	team := lookup(t, g.Root(), "docs", "about", "team")

	got, err := VirtualRoot(team, &api.Request{VHostRoot: "/cms"})
	require.NoError(t, err)
	assert.Equal(t, lookup(t, g.Root(), "cms"), got)
}

func TestVirtualRoot_HeaderMiss(t *testing.T) {
	g := buildSite(t)
	team := lookup(t, g.Root(), "docs", "about", "team")

	_, err := VirtualRoot(team, &api.Request{VHostRoot: "/missing"})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestVirtualRoot_LineageFallback(t *testing.T) {
	g := buildSite(t)
	team := lookup(t, g.Root(), "docs", "about", "team")

	got, err := VirtualRoot(team, &api.Request{})
	require.NoError(t, err)
	assert.Equal(t, g.Root(), got)

	got, err = VirtualRoot(team, nil)
	require.NoError(t, err)
	assert.Equal(t, g.Root(), got)
}
