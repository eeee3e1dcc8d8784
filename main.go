// Command gomln translates Markov logic networks into weighted clauses.
//
// Usage:
//
//	gomln parse FILE                          prints the canonical version of a model
//	gomln normalize [--form cnf|dnf] FORMULA  prints the normal form of a formula
//	gomln clauses FILE                        prints the weighted clauses of a model
//	gomln ground [-o FILE] FILE               writes the ground clauses of a model in WCNF
//
// The domain is given with --constants A,B,C or in the configuration file (--config).
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	// Grounding allocates many short-lived trees.
	debug.SetGCPercent(300)
	cmd, a := newRootCmd()
	err := cmd.Execute()
	if cerr := a.close(context.Background()); cerr != nil {
		fmt.Fprintf(os.Stderr, "could not flush telemetry: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
