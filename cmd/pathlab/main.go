// pathlab compares A* heuristics on obstacle grids.
//
// Usage:
//
//	pathlab serve      [--addr=:5000] [--data-dir=data] [--config=server.yaml]
//	pathlab solve      --file=maze.json [--heuristic=manhattan | --all] [--diagonal]
//	pathlab generate   [--size=15] [--mode=random|carved|kruskal] [--seed=N] [--ascii]
//	pathlab experiment [--preset=full | --config=suite.yaml] [--out=results.csv]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
