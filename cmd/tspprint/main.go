// Command tspprint loads a TSPLIB file and prints its coordinates and
// distance matrix.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/branchbound/tskengine/tsp"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:          "tspprint <file.tsp>",
	Short:        "print a TSPLIB graph's coordinates and distance matrix",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.StandardLogger()
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}

		path := args[0]
		log.WithField("path", path).Debug("loading graph")
		g, err := tsp.LoadGraph(path)
		if err != nil {
			return err
		}
		log.WithField("cities", g.Size()).Info("graph loaded")

		return g.WriteTo(cmd.OutOrStdout())
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
