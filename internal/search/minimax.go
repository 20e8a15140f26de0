package search

import (
	"github.com/Alex7342/BitboatdChessEngine/internal/config"
	"github.com/Alex7342/BitboatdChessEngine/internal/eval"
	"github.com/Alex7342/BitboatdChessEngine/internal/history"
	"github.com/Alex7342/BitboatdChessEngine/internal/movegen"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	"github.com/Alex7342/BitboatdChessEngine/internal/ttable"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
	"github.com/Alex7342/BitboatdChessEngine/internal/zobrist"
)

// usable reports whether a transposition-table entry can substitute for a
// full search of this node. White is the maximizer and Black the minimizer:
// an entry only short-circuits the node when its bound already exceeds the
// threshold that would have caused the same kind of cutoff here.
func usable(e ttable.Entry, alpha, beta Value, sideToMove Color) (Value, bool) {
	if e.Bound == ttable.BoundExact {
		return e.Score, true
	}
	if sideToMove == White {
		if e.Bound == ttable.BoundLower && e.Score >= beta {
			return e.Score, true
		}
		if e.Bound == ttable.BoundUpper && e.Score <= alpha {
			return e.Score, true
		}
		return 0, false
	}
	if e.Bound == ttable.BoundLower && e.Score <= alpha {
		return e.Score, true
	}
	if e.Bound == ttable.BoundUpper && e.Score >= beta {
		return e.Score, true
	}
	return 0, false
}

// isRepetition scans the position's Zobrist history backwards in strides of
// two ply (matching side to move on each candidate), stopping at the second
// match of the current key - the third occurrence overall. See DESIGN.md
// for why this resolves in favor of strict threefold rather than fivefold.
func isRepetition(p *position.Position) bool {
	if p.HalfmoveClock() < 4 {
		return false
	}
	h := p.History()
	if len(h) == 0 {
		return false
	}
	current := h[len(h)-1]
	matches := 0
	for i := len(h) - 3; i >= 0; i -= 2 {
		if h[i] == current {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

func hasNonPawnMaterial(p *position.Position, c Color) bool {
	return p.PiecesBb(c, Knight)|p.PiecesBb(c, Bishop)|p.PiecesBb(c, Rook)|p.PiecesBb(c, Queen) != BbEmpty
}

// minimax is a full-width, classical (non-negamax) minimax: White nodes
// maximize the absolute centipawn score and Black nodes minimize it, so
// alpha and beta retain one meaning across the whole tree instead of
// flipping sign with each ply.
func (r *run) minimax(p *position.Position, alpha, beta Value, depth int, ply int) (Move, Value) {
	r.nodes++
	if ply > r.selDepth {
		r.selDepth = ply
	}
	if r.stopped() {
		return NoMove, ValueNA
	}

	if ply > 0 {
		if p.HalfmoveClock() >= 100 {
			return NoMove, ValueDraw
		}
		if isRepetition(p) {
			return NoMove, ValueDraw
		}
	}

	us := p.SideToMove()
	isMax := us == White
	key := p.ZobristKey()

	var ttMove Move
	if entry, ok := r.search.TT.Probe(zobrist.Key(key)); ok {
		r.stats.TtHits++
		ttMove = entry.Move
		if entry.Depth >= depth {
			if score, ok := usable(entry, alpha, beta, us); ok {
				return entry.Move, score
			}
		}
	}

	if depth <= 0 {
		score := eval.Evaluate(p)
		r.search.TT.Store(zobrist.Key(key), NoMove, score, 0, ttable.BoundExact)
		return NoMove, score
	}

	inCheck := p.InCheck(us)

	if config.Settings.Search.UseNullMove && !inCheck && ply > 0 &&
		depth >= config.Settings.Search.NullMoveThreshold &&
		p.LastMove() != NoMove && hasNonPawnMaterial(p, us) {
		r.stats.NullMoveAttempts++
		reduction := config.Settings.Search.NullMoveReduction + 1
		p.DoMove(NoMove)
		var nullScore Value
		if isMax {
			_, nullScore = r.minimax(p, beta-1, beta, depth-reduction, ply+1)
		} else {
			_, nullScore = r.minimax(p, alpha, alpha+1, depth-reduction, ply+1)
		}
		p.UndoMove()
		if r.stopped() {
			return NoMove, ValueNA
		}
		if isMax && nullScore >= beta {
			r.stats.NullMoveCutoffs++
			return NoMove, beta
		}
		if !isMax && nullScore <= alpha {
			r.stats.NullMoveCutoffs++
			return NoMove, alpha
		}
	}

	moves := movegen.GeneratePseudoLegal(p)
	moves.SortByKey(func(m Move) int64 {
		if m.Equal(ttMove) {
			return int64(history.MaxHistory) + 1_000_000
		}
		return eval.OrderScore(p, r.search.Tables, ply, m)
	})

	legalCount := 0
	bestMove := NoMove
	alpha0, beta0 := alpha, beta
	var best Value
	if isMax {
		best = -ValueInf
	} else {
		best = ValueInf
	}

	for _, m := range moves {
		p.DoMove(m)
		if p.InCheck(us) {
			p.UndoMove()
			continue
		}
		legalCount++

		_, score := r.minimax(p, alpha, beta, depth-1, ply+1)
		p.UndoMove()

		if r.stopped() {
			return NoMove, ValueNA
		}

		if isMax {
			if score > best {
				best, bestMove = score, m
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best, bestMove = score, m
			}
			if best < beta {
				beta = best
			}
		}

		if alpha >= beta {
			r.stats.TotalCutoffs++
			if legalCount == 1 {
				r.stats.FirstMoveCutoffs++
			}
			if !eval.IsCapture(p, m) {
				r.search.Tables.AddKiller(ply, m)
				r.search.Tables.AddHistory(us, m, depth)
			}
			r.search.TT.Store(zobrist.Key(key), bestMove, best, depth, ttable.BoundLower)
			return bestMove, best
		}
	}

	if legalCount == 0 {
		var terminal Value
		switch {
		case inCheck && isMax:
			terminal = MatedIn(ply) // White to move, in check, no moves: White is mated
		case inCheck:
			terminal = MateIn(ply) // Black to move, in check, no moves: Black is mated
		default:
			terminal = ValueDraw
		}
		r.search.TT.Store(zobrist.Key(key), NoMove, terminal, depth, ttable.BoundExact)
		return NoMove, terminal
	}

	bound := ttable.BoundUpper
	if isMax && alpha > alpha0 {
		bound = ttable.BoundExact
	} else if !isMax && beta < beta0 {
		bound = ttable.BoundExact
	}
	if bound == ttable.BoundExact && !eval.IsCapture(p, bestMove) {
		r.search.Tables.AddHistory(us, bestMove, depth)
	}
	r.search.TT.Store(zobrist.Key(key), bestMove, best, depth, bound)
	return bestMove, best
}
