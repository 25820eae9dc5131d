package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphspan/graphspan/graphio"
	"github.com/graphspan/graphspan/mst"
)

var mstPrint bool

var mstCmd = &cobra.Command{
	Use:   "mst",
	Short: "Compute a minimum spanning tree of an undirected graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		tree, total, err := mst.Prim(g)
		if err != nil {
			return err
		}

		fmt.Printf("tree edges:   %d\n", tree.EdgeCount())
		fmt.Printf("total weight: %g\n", total)
		if mstPrint {
			fmt.Println()
			if err = graphio.Write(os.Stdout, tree); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	mstCmd.Flags().BoolVar(&mstPrint, "print", false, "also render the tree as an adjacency list")
	rootCmd.AddCommand(mstCmd)
}
