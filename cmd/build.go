package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentic-research/wayfind/internal/graph"
	"github.com/agentic-research/wayfind/internal/ingest"
)

var buildCmd = &cobra.Command{
	Use:   "build [definition] [output.db]",
	Short: "Compile an HCL or JSON graph definition into a SQLite node table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		definition, output := args[0], args[1]

		var (
			g   *graph.MemoryGraph
			err error
		)
		switch ext := filepath.Ext(definition); ext {
		case ".hcl":
			g, err = ingest.LoadHCL(definition)
		case ".json":
			g, err = ingest.LoadJSON(definition)
		default:
			return fmt.Errorf("unsupported definition extension %q", ext)
		}
		if err != nil {
			return err
		}

		if err := graph.SaveSQLite(output, g); err != nil {
			return err
		}
		fmt.Printf("Wrote %d nodes to %s\n", g.Len(), output)
		return nil
	},
}
