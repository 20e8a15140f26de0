// Package eval scores a position in centipawns and implements the
// capture-ordering heuristic (SEE) the search uses to sort
// moves. A positive score favors White throughout this package, matching
// the engine's full-width (non-negamax) minimax.
package eval

import (
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

// Evaluate returns the position's static score: material plus
// piece-square bonuses for White, minus the same for Black (whose bonus
// is looked up at the vertically mirrored square).
func Evaluate(p *position.Position) Value {
	var score int
	for pt := Pawn; pt < PtLength; pt++ {
		wbb := p.PiecesBb(White, pt)
		for wbb != BbEmpty {
			s := wbb.PopLsb()
			score += int(PieceValue(pt)) + pstValue(White, pt, s)
		}
		bbb := p.PiecesBb(Black, pt)
		for bbb != BbEmpty {
			s := bbb.PopLsb()
			score -= int(PieceValue(pt)) + pstValue(Black, pt, s)
		}
	}
	return Value(score)
}
