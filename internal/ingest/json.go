package ingest

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/wayfind/internal/graph"
)

// LoadJSON reads a JSON graph definition: an array of root resources,
// each an object with "name", optional "leaf" and optional "children".
//
//	[
//	  {"name": "docs", "children": [
//	    {"name": "about"},
//	    {"name": "logo.png", "leaf": true}
//	  ]}
//	]
func LoadJSON(path string) (*graph.MemoryGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph definition: %w", err)
	}
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse graph definition: %w", err)
	}
	list, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("graph definition must be a JSON array, got %T", parsed)
	}
	defs, err := resourceDefs(list)
	if err != nil {
		return nil, err
	}
	return Build(&Definition{Resources: defs})
}

func resourceDefs(list []any) ([]*ResourceDef, error) {
	defs := make([]*ResourceDef, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("resource entry must be an object, got %T", item)
		}
		name, ok := obj["name"].(string)
		if !ok {
			return nil, fmt.Errorf("resource entry missing string \"name\"")
		}
		def := &ResourceDef{Name: name}
		if leaf, ok := obj["leaf"].(bool); ok {
			def.Leaf = leaf
		}
		if children, ok := obj["children"].([]any); ok {
			sub, err := resourceDefs(children)
			if err != nil {
				return nil, fmt.Errorf("under %q: %w", name, err)
			}
			def.Resources = sub
		}
		defs = append(defs, def)
	}
	return defs, nil
}
