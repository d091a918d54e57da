// Command gridview builds a grid from configuration and dumps, probes,
// exports or browses it.
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
