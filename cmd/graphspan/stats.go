package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphspan/graphspan/graphio"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate statistics of the graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		kind := "undirected"
		if g.Directed() {
			kind = "directed"
		}
		fmt.Printf("kind:         %s\n", kind)
		fmt.Printf("vertices:     %d\n", g.VertexCount())
		fmt.Printf("edges:        %d\n", g.EdgeCount())
		fmt.Printf("total weight: %g\n", g.TotalWeight())

		return nil
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render the graph as an adjacency list on stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		return graphio.Write(os.Stdout, g)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(printCmd)
}
