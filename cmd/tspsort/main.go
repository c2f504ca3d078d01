// Command tspsort exercises sortjob.SortTask under both the direct and
// partitioned sequential runners over the same random input, to show
// Merge actually doing work.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/branchbound/tskengine/sortjob"
	"github.com/branchbound/tskengine/task"
)

const sortSize = 100

var debug bool

var rootCmd = &cobra.Command{
	Use:          "tspsort",
	Short:        "sort a random vector via DirectRunner and PartitionedRunner",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.StandardLogger()
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}

		rng := rand.New(rand.NewSource(1))
		base := sortjob.NewRandomSortTask(sortSize, rng)
		direct := base.Clone()
		partitioned := base.Clone()

		directRunner := &task.DirectRunner{}
		log.Debug("running DirectRunner")
		if err := directRunner.Run(direct); err != nil {
			return err
		}

		partitionedRunner := task.NewPartitionedRunner(4)
		log.Debug("running PartitionedRunner")
		if err := partitionedRunner.Run(partitioned); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := direct.WriteTo(out); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nDirectRunner:      %v\n", directRunner.Duration())
		if err := partitioned.WriteTo(out); err != nil {
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
