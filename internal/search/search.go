// Package search implements alpha-beta minimax with null-move pruning, a
// transposition table, and the capture/killer/history move ordering from
// package eval and package history. Iterative deepening drives the
// search under a time budget computed from the UCI time control.
package search

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Alex7342/BitboatdChessEngine/internal/config"
	"github.com/Alex7342/BitboatdChessEngine/internal/elog"
	"github.com/Alex7342/BitboatdChessEngine/internal/history"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	"github.com/Alex7342/BitboatdChessEngine/internal/ttable"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

var log = elog.Get("search")

// TimeControl mirrors the UCI "go" parameters relevant to time management.
type TimeControl struct {
	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration
	MoveTime             time.Duration // fixed time for this move, if >0
	Depth                int           // fixed depth limit, if >0
	Infinite             bool
}

// Statistics reports iterative-deepening progress for the UCI boundary.
type Statistics struct {
	Depth            int
	SelDepth         int
	Nodes            uint64
	Score            Value
	Elapsed          time.Duration
	NullMoveAttempts uint64
	NullMoveCutoffs  uint64
	TtHits           uint64
	FirstMoveCutoffs uint64
	TotalCutoffs     uint64
}

// Search owns the state that persists across moves within one game: the
// transposition table, the history/killer ordering tables and the stop
// flag. Every BestMove call resets the stop flag and creates a fresh run
// (the per-search deadline, node counter and statistics).
type Search struct {
	TT     *ttable.Table
	Tables *history.Tables
	stop   atomic.Bool
}

// NewSearch builds a Search with a transposition table sized per config.
func NewSearch() *Search {
	return &Search{
		TT:     ttable.New(config.Settings.Search.TtSizeMB),
		Tables: history.NewTables(),
	}
}

// ClearTranspositionTable empties the TT; called on ucinewgame.
func (s *Search) ClearTranspositionTable() { s.TT.Clear() }

// ClearOrderingTables discards history/killer state; called on ucinewgame.
func (s *Search) ClearOrderingTables() { s.Tables = history.NewTables() }

// Stop asynchronously requests cancellation of any in-progress search. The
// UCI input-reader goroutine calls it while a search goroutine is polling
// it from inside minimax.
func (s *Search) Stop() { s.stop.Store(true) }

// run holds the ephemeral, single-search state threaded through minimax:
// node counter, deadline and statistics (the stop flag is read through
// the owning Search). Passing
// this explicitly (rather than carrying it on Search or in globals) keeps
// the recursion reentrant.
type run struct {
	search    *Search
	nodes     uint64
	start     time.Time
	deadline  time.Time
	rootDepth int
	selDepth  int
	stats     Statistics
}

func (r *run) stopped() bool {
	if r.search.stop.Load() {
		return true
	}
	if time.Now().After(r.deadline) {
		r.search.stop.Store(true)
		return true
	}
	return false
}

// computeBudget applies the standard time-management formula:
// remaining/40 + increment/2, clamped to the remaining time. A fixed
// movetime or an explicit depth-only search with no clock bypasses it.
func computeBudget(tc TimeControl, side Color) time.Duration {
	if tc.MoveTime > 0 {
		return tc.MoveTime
	}
	if tc.Infinite {
		return 365 * 24 * time.Hour
	}
	remaining, inc := tc.WhiteTime, tc.WhiteInc
	if side == Black {
		remaining, inc = tc.BlackTime, tc.BlackInc
	}
	if remaining <= 0 {
		if tc.Depth > 0 {
			return 365 * 24 * time.Hour
		}
		return 2 * time.Second
	}
	overhead := time.Duration(config.Settings.Search.MoveOverheadMillis) * time.Millisecond
	budget := remaining/40 + inc/2
	if budget > remaining-overhead {
		budget = remaining - overhead
	}
	if budget <= 0 {
		budget = time.Millisecond
	}
	return budget
}

// BestMove runs iterative deepening from depth 1 until the time budget is
// exhausted, a requested fixed depth is reached, or an external Stop()
// call lands. It always returns the last fully completed depth's result.
func (s *Search) BestMove(p *position.Position, tc TimeControl) (Move, Statistics) {
	budget := computeBudget(tc, p.SideToMove())
	return s.bestMoveByDeadline(p, tc, time.Now().Add(budget), budget)
}

func (s *Search) bestMoveByDeadline(p *position.Position, tc TimeControl, deadline time.Time, budget time.Duration) (Move, Statistics) {
	s.stop.Store(false)
	r := &run{search: s, start: time.Now(), deadline: deadline}

	maxDepth := config.Settings.Search.MaxDepth
	if tc.Depth > 0 && tc.Depth < maxDepth {
		maxDepth = tc.Depth
	}

	best := NoMove
	for depth := 1; depth <= maxDepth; depth++ {
		if s.Tables.Saturated() {
			s.Tables.HalveAll()
		}
		s.Tables.ClearKillers()
		r.rootDepth = depth
		r.selDepth = depth

		move, score := r.minimax(p, -ValueInf, ValueInf, depth, 0)

		elapsed := time.Since(r.start)
		if !r.stopped() {
			best = move
			r.stats = Statistics{
				Depth: depth, SelDepth: r.selDepth, Nodes: r.nodes,
				Score: score, Elapsed: elapsed,
				NullMoveAttempts: r.stats.NullMoveAttempts,
				NullMoveCutoffs:  r.stats.NullMoveCutoffs,
				TtHits:           r.stats.TtHits,
				FirstMoveCutoffs: r.stats.FirstMoveCutoffs,
				TotalCutoffs:     r.stats.TotalCutoffs,
			}
			log.Debugf("depth %d nodes %d score %v elapsed %s", depth, r.nodes, score, elapsed)
		}
		if r.stopped() {
			break
		}
		if elapsed*2 > budget {
			break
		}
	}
	return best, r.stats
}

// Handle is a running search started with Go. The UCI command loop keeps
// reading stdin on its own goroutine while a Handle's errgroup supervises
// the search goroutine together with a deadline watchdog, so a late or
// missing "stop" never leaves the engine hung.
type Handle struct {
	group *errgroup.Group
	move  Move
	stats Statistics
}

// Go starts a search in the background. Call Stop to request early
// cancellation (e.g. on a UCI "stop" or "quit") and Wait to block for the
// result; both are safe to call once each per Handle.
func (s *Search) Go(p *position.Position, tc TimeControl) *Handle {
	budget := computeBudget(tc, p.SideToMove())
	deadline := time.Now().Add(budget)
	h := &Handle{}
	done := make(chan struct{})
	g := new(errgroup.Group)

	g.Go(func() error {
		defer close(done)
		h.move, h.stats = s.bestMoveByDeadline(p, tc, deadline, budget)
		return nil
	})
	g.Go(func() error {
		timer := time.NewTimer(time.Until(deadline))
		defer timer.Stop()
		select {
		case <-timer.C:
			s.Stop()
		case <-done:
		}
		return nil
	})

	h.group = g
	return h
}

// Wait blocks until the search (and its deadline watchdog) have both
// returned, yielding the best move found and its final statistics.
func (h *Handle) Wait() (Move, Statistics) {
	h.group.Wait()
	return h.move, h.stats
}
