// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/board/fen"
	"github.com/herohde/zugzwang/pkg/movegen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.StartFEN
	}

	b, _, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := movegen.Perft(b, i)
		duration := time.Since(start)

		if *divide && i == *depth {
			dividePerft(b, i)
		}
		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

func dividePerft(b *board.Board, depth int) {
	for _, m := range movegen.LegalMoves(b) {
		var count uint64
		if depth == 1 {
			count = 1
		} else {
			count = movegen.Perft(b.MakeMove(m), depth-1)
		}
		fmt.Printf("%v: %v\n", m, count)
	}
}
