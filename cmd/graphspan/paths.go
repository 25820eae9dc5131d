package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/graphspan/graphspan/dijkstra"
)

var pathsSource int64

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Compute single-source shortest paths from --source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		dist, _, err := dijkstra.Dijkstra(g, pathsSource)
		if err != nil {
			return err
		}

		for _, id := range g.Vertices() {
			d := dist[id]
			if math.IsInf(d, 1) {
				fmt.Printf("%d\tunreachable\n", id)
				continue
			}
			fmt.Printf("%d\t%g\n", id, d)
		}

		return nil
	},
}

func init() {
	pathsCmd.Flags().Int64VarP(&pathsSource, "source", "s", 0, "source vertex id")
	_ = pathsCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(pathsCmd)
}
