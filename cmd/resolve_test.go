package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/wayfind/api"
	"github.com/agentic-research/wayfind/internal/graph"
	"github.com/agentic-research/wayfind/internal/traverse"
)

func TestResultSummary(t *testing.T) {
	g := graph.NewMemoryGraph()
	docs, err := g.AddNode(g.Root(), "docs")
	require.NoError(t, err)
	_, err = g.AddNode(docs, "about")
	require.NoError(t, err)

	w := traverse.NewModelGraphTraverser(g.Root())
	result, err := w.Traverse(&api.Request{Path: "/docs/about/@@edit/x"})
	require.NoError(t, err)

	summary := resultSummary(result)
	assert.Equal(t, "/docs/about", summary["context"])
	assert.Equal(t, "edit", summary["view_name"])
	assert.Equal(t, []string{"x"}, summary["subpath"])
	assert.Equal(t, []string{"docs", "about"}, summary["traversed"])
	assert.Equal(t, "/", summary["virtual_root"])
	assert.Equal(t, "/", summary["root"])
}
