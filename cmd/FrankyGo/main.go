//
// FrankyGo - UCI chess engine in GO for learning purposes
//

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kopparsynth/mailchess/internal/config"
	"github.com/kopparsynth/mailchess/internal/fen"
	"github.com/kopparsynth/mailchess/internal/movegen"
	"github.com/kopparsynth/mailchess/internal/search"
	"github.com/kopparsynth/mailchess/internal/uci"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	perft := flag.Int("perft", 0, "run perft to the given depth on -fen (or the start position) and exit")
	fenStr := flag.String("fen", fen.StartFEN, "fen for -perft")
	movetime := flag.Int("movetime", 0, "search the given position for this many milliseconds and print the best move, then exit")
	flag.Parse()

	if err := config.Load(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *perft != 0 {
		runPerft(*fenStr, *perft)
		return
	}

	if *movetime != 0 {
		runFixedMoveSearch(*fenStr, *movetime)
		return
	}

	u := uci.NewUciHandler()
	u.Loop()
}

func runPerft(fenStr string, depth int) {
	b, err := fen.Parse(fenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(b, d)
		fmt.Printf("perft %d: %d nodes in %s\n", d, nodes, time.Since(start))
	}
}

func runFixedMoveSearch(fenStr string, movetimeMs int) {
	b, err := fen.Parse(fenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "search: %v\n", err)
		os.Exit(1)
	}
	s := search.NewSearch()
	sl := search.NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = time.Duration(movetimeMs) * time.Millisecond
	s.StartSearch(b, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	fmt.Println(result.String())
}
