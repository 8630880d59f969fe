// Command carcara checks SMT-LIB benchmarks with a congruence closure
// engine for the theory of equality and uninterpreted functions.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		if errors.Is(err, errNonconforming) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "carcara:", err)
		os.Exit(2)
	}
}
