// Package ingest loads model-graph definitions from HCL, JSON or a
// prebuilt SQLite node table into the stores the resolver walks.
package ingest

import (
	"fmt"
	"path/filepath"

	"github.com/agentic-research/wayfind/api"
	"github.com/agentic-research/wayfind/internal/graph"
)

// Definition is a declarative model graph: a tree of named resources
// under an implicit unnamed root.
type Definition struct {
	Resources []*ResourceDef `hcl:"resource,block"`
}

// ResourceDef declares one node. Leaf nodes get no child-lookup
// capability, so traversal always stops at them.
type ResourceDef struct {
	Name      string         `hcl:"name,label"`
	Leaf      bool           `hcl:"leaf,optional"`
	Resources []*ResourceDef `hcl:"resource,block"`
}

// Build materializes a definition into an arena-backed graph.
func Build(def *Definition) (*graph.MemoryGraph, error) {
	g := graph.NewMemoryGraph()
	if err := addAll(g, g.Root(), def.Resources); err != nil {
		return nil, err
	}
	return g, nil
}

func addAll(g *graph.MemoryGraph, parent api.Resource, defs []*ResourceDef) error {
	for _, def := range defs {
		if def.Leaf && len(def.Resources) > 0 {
			return fmt.Errorf("resource %q: a leaf cannot contain resources", def.Name)
		}
		if def.Leaf {
			if _, err := g.AddLeaf(parent, def.Name); err != nil {
				return fmt.Errorf("resource %q: %w", def.Name, err)
			}
			continue
		}
		child, err := g.AddNode(parent, def.Name)
		if err != nil {
			return fmt.Errorf("resource %q: %w", def.Name, err)
		}
		if err := addAll(g, child, def.Resources); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a graph from path, dispatching on the file extension:
// .hcl for HCL definitions, .json for JSON definitions, and .db for a
// prebuilt SQLite node table.
func Load(path string) (graph.Source, error) {
	switch ext := filepath.Ext(path); ext {
	case ".hcl":
		return LoadHCL(path)
	case ".json":
		return LoadJSON(path)
	case ".db", ".sqlite":
		return graph.OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported graph definition extension %q", ext)
	}
}
