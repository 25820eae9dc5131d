package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/graphspan/graphspan/core"
	"github.com/graphspan/graphspan/mincut"
)

var (
	mincutFactor   float64
	mincutTrials   int
	mincutParallel int
	mincutYes      bool
)

// progressWidth is the number of '|' ticks a full run prints.
const progressWidth = 100

var mincutCmd = &cobra.Command{
	Use:   "mincut",
	Short: "Estimate the global minimum cut of an undirected graph",
	Long: `mincut runs repeated randomized edge contractions and reports the
smallest cut seen. The default trial count grows with n^2*ln(n), so large
graphs are expensive; the command estimates the run time from a short
calibration and asks for confirmation before committing to the full run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		if g.Directed() {
			return errors.New("mincut requires an undirected graph")
		}

		factor := mincutFactor
		if !cmd.Flags().Changed("factor") && cfg.MinCut.Factor > 0 {
			factor = cfg.MinCut.Factor
		}
		parallelism := mincutParallel
		if !cmd.Flags().Changed("parallel") && cfg.MinCut.Parallelism > 0 {
			parallelism = cfg.MinCut.Parallelism
		}

		opts := []mincut.Option{
			mincut.WithTrialFactor(factor),
			mincut.WithParallelism(parallelism),
		}
		if mincutTrials > 0 {
			opts = append(opts, mincut.WithTrials(mincutTrials))
		}
		if !mincutYes {
			opts = append(opts, mincut.WithConfirm(confirmRun(g, parallelism)))
		}
		opts = append(opts, mincut.WithProgress(progressBar()))

		start := time.Now()
		cut, err := mincut.Karger(g, opts...)
		if err != nil {
			if errors.Is(err, mincut.ErrDeclined) {
				fmt.Println("Aborted.")
				return nil
			}
			return err
		}

		logger.Debug("mincut finished", "elapsed", time.Since(start))
		fmt.Printf("minimum cut: %d\n", cut)

		return nil
	},
}

// confirmRun estimates the full run time from a short calibration pass
// and asks the user to approve it.
func confirmRun(g *core.Graph, parallelism int) func(trials int) bool {
	return func(trials int) bool {
		eta := estimateRun(g, trials, parallelism)
		fmt.Printf("About to run %d contraction trials, estimated %s.\n", trials, eta.Round(time.Millisecond))
		fmt.Print(`Enter "Y" to proceed: `)

		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		return strings.TrimSpace(line) == "Y"
	}
}

// estimateRun times a handful of trials and extrapolates linearly.
func estimateRun(g *core.Graph, trials, parallelism int) time.Duration {
	const calibration = 3
	if trials <= calibration {
		return 0
	}

	start := time.Now()
	_, err := mincut.Karger(g,
		mincut.WithTrials(calibration),
		mincut.WithParallelism(parallelism))
	if err != nil {
		return 0
	}
	perTrial := time.Since(start) / calibration

	return perTrial * time.Duration(trials)
}

// progressBar prints one '|' per percent of trials completed.
func progressBar() func(done, total int) {
	printed := 0
	return func(done, total int) {
		ticks := done * progressWidth / total
		for ; printed < ticks; printed++ {
			fmt.Print("|")
		}
		if done == total {
			fmt.Println()
		}
	}
}

func init() {
	mincutCmd.Flags().Float64Var(&mincutFactor, "factor", mincut.DefaultTrialFactor, "multiplier on the n^2*ln(n) trial count")
	mincutCmd.Flags().IntVar(&mincutTrials, "trials", 0, "exact trial count, overriding --factor")
	mincutCmd.Flags().IntVar(&mincutParallel, "parallel", 1, "number of concurrent trial workers")
	mincutCmd.Flags().BoolVarP(&mincutYes, "yes", "y", false, "skip the run-time confirmation prompt")
	rootCmd.AddCommand(mincutCmd)
}
