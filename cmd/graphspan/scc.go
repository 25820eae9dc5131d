package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphspan/graphspan/scc"
)

var sccTop int

var sccCmd = &cobra.Command{
	Use:   "scc",
	Short: "Decompose a directed graph into strongly connected components",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		res, err := scc.Decompose(g)
		if err != nil {
			return err
		}

		fmt.Printf("components: %d\n", res.Count())
		for _, c := range res.Top(sccTop) {
			fmt.Printf("%d\t%d\n", c.Rep, c.Size)
		}

		return nil
	},
}

func init() {
	sccCmd.Flags().IntVar(&sccTop, "top", 5, "number of largest components to list")
	rootCmd.AddCommand(sccCmd)
}
