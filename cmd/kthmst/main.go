// Command kthmst reads an adjacency-matrix file, enumerates every spanning
// tree of the described graph in nondecreasing order of total weight, and
// prints or emits them according to the requested print mode.
//
// Usage: kthmst <input_file> <print_mode>
//
//	print_mode 0 - silent (no console output)
//	print_mode 1 - one representative per distinct cost
//	print_mode 2 - every enumerated spanning tree
//
// A disconnected input graph is a soft failure: it prints a diagnostic and
// still exits 0.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kthmst/graph"
	"github.com/katalvlaran/kthmst/kbest"
	"github.com/katalvlaran/kthmst/matrixio"
	"github.com/katalvlaran/kthmst/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kthmst <input_file> <print_mode>",
		Short: "Enumerate every spanning tree of a weighted graph, cost-sorted",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := strconv.Atoi(args[1])
			if err != nil || mode < report.ModeSilent || mode > report.ModeAll {
				return fmt.Errorf("kthmst: print_mode must be 0, 1, or 2")
			}

			return run(cmd.OutOrStdout(), args[0], mode)
		},
	}
}

func run(w io.Writer, inputFile string, mode int) error {
	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("kthmst: %w", err)
	}
	defer f.Close()

	m, err := matrixio.ReadMatrix(f)
	if err != nil {
		return fmt.Errorf("kthmst: %w", err)
	}

	g, err := graph.FromMatrix(m)
	if err != nil {
		return fmt.Errorf("kthmst: %w", err)
	}

	results, err := kbest.Solve(g)
	if err != nil {
		if errors.Is(err, kbest.ErrGraphNotConnected) {
			// Soft failure: diagnostic message, exit 0.
			fmt.Fprintln(w, "error: graph is not connected, no spanning tree exists")
			return nil
		}
		return fmt.Errorf("kthmst: %w", err)
	}

	report.Print(w, mode, g, results)

	return nil
}
