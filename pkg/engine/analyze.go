package engine

import (
	"context"
	"sync"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/board/fen"
	"github.com/herohde/zugzwang/pkg/search"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// Handle controls a running Analyze search.
type Handle interface {
	// Halt stops iterative deepening, cancelling the depth in progress, and returns the Result
	// of the last depth that completed. Idempotent: repeated calls return the same final Result.
	Halt() Result
}

// Analyze starts iterative deepening on fenStr in the background and streams one Result per
// completed depth on the returned channel, up to maxDepth. The channel closes when the
// search stops, whether by reaching maxDepth, by Handle.Halt, or by ctx cancellation.
// BestMove is the synchronous equivalent for callers that just want the final answer.
func (e *Engine) Analyze(ctx context.Context, fenStr string, maxDepth int) (Handle, <-chan Result, error) {
	b, _, _, err := fen.Decode(fenStr)
	if err != nil {
		return nil, nil, err
	}
	if maxDepth <= 0 {
		maxDepth = e.maxDepth
	}

	out := make(chan Result, 1)
	h := &handle{init: make(chan struct{}), quit: make(chan struct{})}
	go h.run(ctx, e.search, b, maxDepth, e.timeMs, out)
	return h, out, nil
}

// handle is the concurrent-safe Handle implementation: the searching goroutine only ever
// writes result under mu, and Halt sets done with an atomic CAS so its close(quit) fires at
// most once, mirroring the teacher's iterative-deepening harness.
type handle struct {
	init, quit        chan struct{}
	initialized, done atomic.Bool

	mu     sync.Mutex
	result Result
}

func (h *handle) run(ctx context.Context, eng *search.Engine, b *board.Board, maxDepth, timeMs int, out chan Result) {
	defer h.markInitialized()
	defer close(out)

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-h.quit
		cancel()
	}()

	for depth := 1; depth <= maxDepth && !h.done.Load(); depth++ {
		pv, err := eng.SearchDepth(cctx, b, depth, timeMs)
		if err != nil {
			logw.Errorf(ctx, "Analyze failed at depth=%v: %v", depth, err)
			return
		}

		result := Result{
			Move:         pv.Move.String(),
			Score:        pv.Score,
			Nodes:        pv.Nodes,
			DepthReached: pv.DepthReached,
			PV:           formatMoves(pv.Moves),
		}

		h.mu.Lock()
		if h.done.Load() || cctx.Err() != nil {
			// halted or cancelled: this depth may have been cut short, so it is not recorded.
			h.mu.Unlock()
			return
		}
		h.result = result
		h.mu.Unlock()

		select {
		case <-out: // drop a result the caller hasn't read yet, keep only the latest
		default:
		}
		select {
		case out <- result:
		default:
		}

		h.markInitialized()
	}
}

// Halt stops the search and returns the Result of the last completed depth. Blocks until at
// least one depth has completed or the search has ended.
func (h *handle) Halt() Result {
	<-h.init
	if h.done.CAS(false, true) {
		close(h.quit)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result
}

func (h *handle) markInitialized() {
	if h.initialized.CAS(false, true) {
		close(h.init)
	}
}
