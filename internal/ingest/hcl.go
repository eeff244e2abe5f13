package ingest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/agentic-research/wayfind/internal/graph"
)

// LoadHCL reads an HCL graph definition:
//
//	resource "docs" {
//	  resource "about" {}
//	  resource "logo.png" { leaf = true }
//	}
func LoadHCL(path string) (*graph.MemoryGraph, error) {
	var def Definition
	if err := hclsimple.DecodeFile(path, nil, &def); err != nil {
		return nil, fmt.Errorf("decode graph definition: %w", err)
	}
	return Build(&def)
}
