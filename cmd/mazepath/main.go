// Command mazepath solves maze files with depth-first, breadth-first and A*
// search and prints the path each strategy finds.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
