// Command tspseq solves a TSP instance sequentially, once via DirectRunner
// and once via PartitionedRunner, reporting both timings.
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
	Use:          "tspseq <file.tsp> [num_cities]",
	Short:        "solve a TSP instance with the sequential runners",
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.StandardLogger()
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}

		numCities := 0
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("num_cities: %w", err)
			}
			numCities = n
		}

		gDirect, err := cliutil.LoadGraph(args[0], numCities)
		if err != nil {
			return err
		}
		gPartitioned, err := cliutil.LoadGraph(args[0], numCities)
		if err != nil {
			return err
		}
		log.WithField("cities", gDirect.Size()).Info("graph loaded")

		out := cmd.OutOrStdout()

		directCtx := tsp.NewContext(gDirect, 0)
		directRoot := tsp.NewRootTask(directCtx)
		directRunner := &task.DirectRunner{}
		log.Debug("running DirectRunner")
		if err := directRunner.Run(directRoot); err != nil {
			return err
		}
		best := directRoot.Result()
		if err := best.WriteTo(out); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nDirectRunner:      %v\n", directRunner.Duration())

		partitionedCtx := tsp.NewContext(gPartitioned, 0)
		partitionedRoot := tsp.NewRootTask(partitionedCtx)
		partitionedRunner := task.NewPartitionedRunner(gPartitioned.Size())
		log.Debug("running PartitionedRunner")
		if err := partitionedRunner.Run(partitionedRoot); err != nil {
			return err
		}
		best = partitionedRoot.Result()
		if err := best.WriteTo(out); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nPartitionedRunner: %v (splits=%d, solves=%d)\n",
			partitionedRunner.Duration(), partitionedRunner.Splits(), partitionedRunner.Solves())
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
