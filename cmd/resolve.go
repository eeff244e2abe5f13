package cmd

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/wayfind/api"
	"github.com/agentic-research/wayfind/internal/traverse"
)

var vrootValue string

func init() {
	resolveCmd.Flags().StringVar(&vrootValue, "vroot", "", "Virtual-root path (the X-Vhm-Root header value)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]",
	Short: "Resolve a request path against the graph and print the traversal result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openGraph()
		if err != nil {
			return err
		}
		defer closeGraph(src)

		root := src.Root()
		traverser := traverse.DefaultRegistry.TraverserFor(root)
		result, err := traverser.Traverse(&api.Request{
			Path:      args[0],
			VHostRoot: vrootValue,
		})
		if err != nil {
			return err
		}

		fmt.Println(oj.JSON(resultSummary(result), &ojg.Options{Sort: true, Indent: 2}))
		return nil
	},
}

// resultSummary flattens a traversal result for display: resources are
// shown as their encoded model paths.
func resultSummary(result *api.TraversalResult) map[string]any {
	return map[string]any{
		"context":           traverse.ModelPath(result.Context),
		"view_name":         result.ViewName,
		"subpath":           result.Subpath,
		"traversed":         result.Traversed,
		"virtual_root":      traverse.ModelPath(result.VirtualRoot),
		"virtual_root_path": result.VirtualRootPath,
		"root":              traverse.ModelPath(result.Root),
	}
}
