package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"mailbox-chess/internal/perftcheck"
	"mailbox-chess/mailbox"
)

func main() {
	fen := flag.String("fen", mailbox.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.String("verify", "", "Cross-check divide counts against a reference generator (dragontooth, goose or all)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := mailbox.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *verify != "" {
		refs := []perftcheck.Reference{perftcheck.Reference(*verify)}
		if *verify == "all" {
			refs = perftcheck.References
		}
		failed := false
		for _, ref := range refs {
			mismatches, err := perftcheck.Compare(ref, *fen, *depth)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", ref, err)
				os.Exit(2)
			}
			if len(mismatches) == 0 {
				fmt.Printf("%s: ok\n", ref)
				continue
			}
			failed = true
			for _, m := range mismatches {
				fmt.Printf("%s: %s\n", ref, m)
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	if *divide {
		div := mailbox.PerftDivide(board, *depth)
		moves := make([]string, 0, len(div))
		var sum uint64
		for m, n := range div {
			moves = append(moves, m)
			sum += n
		}
		sort.Strings(moves)
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += mailbox.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
