// Command pathbench runs and analyzes grid path-finding experiments.
//
//	pathbench run --quick --trials 5
//	pathbench analyze results/batch_results_20250101_120000_1a2b3c4d.csv
//	pathbench replay --type maze --size 21 --algorithm bidirectional --every 50
//	pathbench gen --type clustered --size 40 --density 0.3 --seed 7
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathbench:", err)
		os.Exit(1)
	}
}
