// Command graphspan inspects graph text files: adjacency rendering,
// aggregate stats, shortest paths, spanning trees, strongly connected
// components, and randomized minimum-cut estimation.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphspan/graphspan/core"
	"github.com/graphspan/graphspan/graphio"
)

var (
	cfg    Config
	logger *slog.Logger

	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "graphspan",
	Short: "Analyze graph text files: stats, paths, MST, SCCs, min cut",
	Long: `graphspan loads a graph from an edge-list or adjacency-list text file
and runs classical analyses over it: aggregate statistics, single-source
shortest paths, minimum spanning trees, strongly connected components,
and randomized global minimum-cut estimation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfg.File, "file", "f", "", "path of the graph text file")
	pf.StringVar(&cfg.Format, "format", "", `input format: "edge-list", "edge-list-header", or "adjacency-list"`)
	pf.BoolVar(&cfg.Directed, "directed", false, "treat the input as a directed graph")
	pf.BoolVar(&cfg.PreReciprocated, "pre-reciprocated", false, "undirected input already lists both directions of every edge")
	pf.StringVar(&flagConfig, "config", "", "path of an optional graphspan.yaml config file")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// loadGraph reads the configured input file into a core.Graph.
func loadGraph() (*core.Graph, error) {
	if cfg.File == "" {
		return nil, fmt.Errorf("no input file: pass --file or set file: in %s", defaultConfigPath)
	}
	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	opts := []graphio.Option{
		graphio.WithFormat(format),
		graphio.WithDirected(cfg.Directed),
	}
	if cfg.PreReciprocated {
		opts = append(opts, graphio.WithPreReciprocated())
	}

	logger.Debug("importing graph", "file", cfg.File, "format", cfg.Format, "directed", cfg.Directed)
	g, err := graphio.ReadFile(cfg.File, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph imported", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// parseFormat maps the config/flag spelling onto a graphio.Format.
func parseFormat(name string) (graphio.Format, error) {
	switch name {
	case "", "edge-list":
		return graphio.FormatEdgeList, nil
	case "edge-list-header":
		return graphio.FormatEdgeListHeader, nil
	case "adjacency-list":
		return graphio.FormatAdjacencyList, nil
	default:
		return 0, fmt.Errorf("unknown format %q", name)
	}
}
