package cmd

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/wayfind/internal/traverse"
)

var pathCmd = &cobra.Command{
	Use:   "path [encoded-path]",
	Short: "Locate a node and print its model path and path tuple",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openGraph()
		if err != nil {
			return err
		}
		defer closeGraph(src)

		model, err := traverse.FindModel(src.Root(), args[0])
		if err != nil {
			return err
		}

		out := map[string]any{
			"model_path":       traverse.ModelPath(model),
			"model_path_tuple": traverse.ModelPathTuple(model),
		}
		fmt.Println(oj.JSON(out, &ojg.Options{Sort: true, Indent: 2}))
		return nil
	},
}
