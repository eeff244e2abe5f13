package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/wayfind/internal/graph"
	"github.com/agentic-research/wayfind/internal/ingest"
	"github.com/agentic-research/wayfind/internal/logging"
)

var (
	graphPath string
	logLevel  string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&graphPath, "graph", "g", "", "Path to graph definition (.hcl, .json or .db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(buildCmd)
}

var rootCmd = &cobra.Command{
	Use:   "wayfind",
	Short: "Wayfind: request path resolution over model graphs",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logging.New(logLevel))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openGraph loads the graph named by --graph. The caller must close the
// returned source when it holds a database handle.
func openGraph() (graph.Source, error) {
	if graphPath == "" {
		return nil, fmt.Errorf("--graph is required")
	}
	return ingest.Load(graphPath)
}

func closeGraph(src graph.Source) {
	if closer, ok := src.(io.Closer); ok {
		_ = closer.Close()
	}
}
