// Command tsppar solves a TSP instance with the parallel runner and
// reports speedup and efficiency against the sequential partitioned
// runner over the same instance.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/branchbound/tskengine/cmd/internal/cliutil"
	"github.com/branchbound/tskengine/task"
	"github.com/branchbound/tskengine/tsp"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:          "tsppar <file.tsp> <num_cities> <num_threads> [cutoff]",
	Short:        "solve a TSP instance in parallel and compare against the sequential runner",
	Args:         cobra.RangeArgs(3, 4),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.StandardLogger()
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}

		numCities, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("num_cities: %w", err)
		}
		numThreads, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("num_threads: %w", err)
		}
		cutoff := 0
		if len(args) == 4 {
			cutoff, err = strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("cutoff: %w", err)
			}
		}

		gPar, err := cliutil.LoadGraph(args[0], numCities)
		if err != nil {
			return err
		}
		gSeq, err := cliutil.LoadGraph(args[0], numCities)
		if err != nil {
			return err
		}
		log.WithField("cities", gPar.Size()).Info("graph loaded")

		out := cmd.OutOrStdout()

		parCtx := tsp.NewContext(gPar, cutoff)
		parRoot := tsp.NewRootTask(parCtx)
		parRunner := task.NewParallelRunner(numThreads)
		parRunner.Log = log
		log.WithField("num_threads", parRunner.NumWorkers()).Info("running ParallelRunner")
		if err := parRunner.Run(parRoot); err != nil {
			return err
		}
		best := parRoot.Result()
		if err := best.WriteTo(out); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nParallelRunner:    %v (run=%s, workers=%d)\n",
			parRunner.Duration(), parRunner.RunID(), parRunner.NumWorkers())

		seqCtx := tsp.NewContext(gSeq, cutoff)
		seqRoot := tsp.NewRootTask(seqCtx)
		seqRunner := task.NewPartitionedRunner(gSeq.Size())
		log.Debug("running PartitionedRunner for comparison")
		if err := seqRunner.Run(seqRoot); err != nil {
			return err
		}
		best = seqRoot.Result()
		if err := best.WriteTo(out); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nPartitionedRunner: %v\n", seqRunner.Duration())

		speedup := float64(seqRunner.Duration()) / float64(parRunner.Duration())
		efficiency := speedup / float64(parRunner.NumWorkers())
		fmt.Fprintf(out, "\nspeedup:    %.2fx\nefficiency: %.2f\n", speedup, efficiency)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "set log level to DEBUG")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
