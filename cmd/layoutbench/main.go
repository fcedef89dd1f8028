// Command layoutbench times summing the same number of random float64 values
// held in a linked list, a growable array and a dense buffer.
package main

import (
	"log"
	"os"

	"layoutbench/bench"
	"layoutbench/randsrc"
	"layoutbench/report"
)

const (
	n       = 2_000_000
	repeats = 5
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("layoutbench: ")

	if err := report.Run(os.Stdout, n, repeats, bench.Defaults(randsrc.New())); err != nil {
		log.Fatal(err)
	}
}
