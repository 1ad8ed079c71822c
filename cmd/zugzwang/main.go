// zugzwang is a minimal command-line driver for the engine: given a position and search
// budget, it prints the best move found. It is not a UCI engine -- UCI protocol compliance
// is explicitly out of scope; this tool speaks the minimal move-string format only.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/zugzwang/pkg/board/fen"
	"github.com/herohde/zugzwang/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	position = flag.String("fen", "", "Position to search (default to standard start position)")
	depth    = flag.Int("depth", 6, "Maximum search depth")
	ttSize   = flag.Int("tt", 1<<20, "Transposition table entries")
	timeMs   = flag.Int("time", 5000, "Soft search deadline, in milliseconds")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: zugzwang [options]

zugzwang searches a single position and prints the best move found.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "%v", engine.Version())

	if *position == "" {
		*position = fen.StartFEN
	}

	e, err := engine.NewEngine(ctx, *depth, *ttSize, *timeMs)
	if err != nil {
		logw.Exitf(ctx, "Failed to construct engine: %v", err)
	}

	result, err := e.BestMove(ctx, *position)
	if err != nil {
		logw.Exitf(ctx, "Search failed on %q: %v", *position, err)
	}

	fmt.Printf("bestmove %v\n", result.Move)
	fmt.Printf("info depth %v score cp %v nodes %v pv %v\n", result.DepthReached, result.Score, result.Nodes, result.PV)
}
