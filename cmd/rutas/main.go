// Command rutas plans routes between the localities of a road network.
//
// It asks for an origin and a destination (or takes them from flags) and
// prints the shortest route, every cycle-free alternative, the longest
// cycle-free route, the localities whose roads are all short, and whether
// the network is connected.
package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
