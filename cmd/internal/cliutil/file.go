// Package cliutil holds glue shared by the cmd/ binaries: loading a TSPLIB
// graph and optionally resizing it, with one consistent error message.
package cliutil

import (
	"fmt"

	"github.com/branchbound/tskengine/tsp"
)

// LoadGraph loads path and, if numCities > 0, resizes the result to that
// many cities. numCities <= 0 means "use the file's full size."
func LoadGraph(path string, numCities int) (*tsp.Graph, error) {
	g, err := tsp.LoadGraph(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if numCities > 0 {
		if err := g.Resize(numCities); err != nil {
			return nil, fmt.Errorf("resizing %s to %d cities: %w", path, numCities, err)
		}
	}
	return g, nil
}
