package eval

import (
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

// maxSeeDepth bounds the simulated exchange to 16 plies: the returned
// score is the minimax of the gain stack, bounded by a depth limit so a
// pathological pile-up of attackers/defenders can't run away.
const maxSeeDepth = 16

// leastValuableAttacker returns the square and type of the cheapest piece
// of side within attackers, or ok=false if attackers is empty.
func leastValuableAttacker(p *position.Position, attackers Bitboard, side Color) (sq Square, pt PieceType, ok bool) {
	for pt = Pawn; pt <= King; pt++ {
		bb := attackers & p.PiecesBb(side, pt)
		if bb != BbEmpty {
			return bb.Lsb(), pt, true
		}
	}
	return SqNone, PtNone, false
}

// SEE statically evaluates the exchange sequence that starts with the
// capturing move m, iteratively swapping on the target square with each
// side's least-valuable attacker. Recomputing attackers against a shrinking
// occupancy after every step naturally reveals X-ray attackers (a queen
// behind a rook, a rook behind a rook, a bishop behind a bishop) without
// separate bookkeeping, since the sliding-attack lookup is occupancy-driven.
// The result is positive when the exchange nets material for the side
// making m.
func SEE(p *position.Position, m Move) Value {
	to := m.To()
	from := m.From()
	mover := p.PieceOn(from)
	if mover == NoPiece {
		return 0
	}
	moverColor := mover.Color()
	moverType := mover.Type()

	var capturedType PieceType
	occ := p.OccupiedAll().Clear(from)
	if m.Type() == EnPassant {
		capturedType = Pawn
		victimSq := MakeSquare(to.File(), from.Rank())
		occ = occ.Clear(victimSq)
	} else {
		capturedType = p.PieceOn(to).Type()
		if capturedType == PtNone {
			return 0
		}
	}

	gain := make([]Value, 1, maxSeeDepth+1)
	gain[0] = PieceValue(capturedType)
	attackerValue := PieceValue(moverType)
	side := moverColor.Flip()

	for depth := 1; depth < maxSeeDepth; depth++ {
		attackers := position.AttackersToOccupied(p, to, side, occ)
		sq, pt, ok := leastValuableAttacker(p, attackers, side)
		if !ok {
			break
		}
		gain = append(gain, attackerValue-gain[depth-1])
		occ = occ.Clear(sq)
		attackerValue = PieceValue(pt)
		side = side.Flip()
	}

	for i := len(gain) - 2; i >= 0; i-- {
		if neg := -gain[i+1]; neg < gain[i] {
			gain[i] = neg
		}
	}
	return gain[0]
}
