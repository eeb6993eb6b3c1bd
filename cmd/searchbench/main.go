package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"mailbox-chess/engine"
	"mailbox-chess/mailbox"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	quiet := flag.Bool("quiet", false, "suppress info lines")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := mailbox.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}
	if _, err := mailbox.ParseFEN(fen); err != nil {
		log.Fatalf("bad fen: %v", err)
	}

	opts := []engine.Option{engine.WithDepth(*depthFlag)}
	if !*quiet {
		opts = append(opts, engine.WithInfo(os.Stdout))
	}
	searcher := engine.NewSearcher(opts...)

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, *depthFlag, *repeatFlag)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position for each run
		board := mailbox.MustParseFEN(fen)

		res := searcher.Search(board)
		totalNodes += res.Nodes
		fmt.Printf("iteration %d: bestmove %v  score=%s nodes=%d time=%v\n",
			i+1, res.Move, engine.FormatScore(res.Score), res.Nodes, res.Elapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v nodes: %d\n", totalElapsed, totalNodes)

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
