package position

import (
	"github.com/Alex7342/BitboatdChessEngine/internal/attacks"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

// IsAttacked reports whether square s is attacked by any piece of byColor,
// using the pawn-attack table inverted by color and the knight/king/slider
// lookups.
func (p *Position) IsAttacked(s Square, byColor Color) bool {
	occ := p.OccupiedAll()
	if attacks.PawnAttacks(byColor.Flip(), s)&p.pieces[byColor][Pawn] != BbEmpty {
		return true
	}
	if attacks.KnightAttacks(s)&p.pieces[byColor][Knight] != BbEmpty {
		return true
	}
	if attacks.KingAttacks(s)&p.pieces[byColor][King] != BbEmpty {
		return true
	}
	rooksQueens := p.pieces[byColor][Rook] | p.pieces[byColor][Queen]
	if attacks.RookAttacks(s, occ)&rooksQueens != BbEmpty {
		return true
	}
	bishopsQueens := p.pieces[byColor][Bishop] | p.pieces[byColor][Queen]
	if attacks.BishopAttacks(s, occ)&bishopsQueens != BbEmpty {
		return true
	}
	return false
}

// AttackersTo returns every piece of byColor that attacks square s given
// the current board occupancy. Used for check-evasion (attackers to the
// king) and for static exchange evaluation (attackers to a capture square).
func AttackersTo(p *Position, s Square, byColor Color) Bitboard {
	occ := p.OccupiedAll()
	var result Bitboard
	result |= attacks.PawnAttacks(byColor.Flip(), s) & p.pieces[byColor][Pawn]
	result |= attacks.KnightAttacks(s) & p.pieces[byColor][Knight]
	result |= attacks.KingAttacks(s) & p.pieces[byColor][King]
	result |= attacks.RookAttacks(s, occ) & (p.pieces[byColor][Rook] | p.pieces[byColor][Queen])
	result |= attacks.BishopAttacks(s, occ) & (p.pieces[byColor][Bishop] | p.pieces[byColor][Queen])
	return result
}

// AttackersToOccupied is AttackersTo but against a hypothetical occupancy,
// used by SEE as pieces are removed from the board one exchange at a time.
func AttackersToOccupied(p *Position, s Square, byColor Color, occ Bitboard) Bitboard {
	var result Bitboard
	result |= attacks.PawnAttacks(byColor.Flip(), s) & p.pieces[byColor][Pawn] & occ
	result |= attacks.KnightAttacks(s) & p.pieces[byColor][Knight] & occ
	result |= attacks.KingAttacks(s) & p.pieces[byColor][King] & occ
	result |= attacks.RookAttacks(s, occ) & (p.pieces[byColor][Rook] | p.pieces[byColor][Queen]) & occ
	result |= attacks.BishopAttacks(s, occ) & (p.pieces[byColor][Bishop] | p.pieces[byColor][Queen]) & occ
	return result
}

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Flip())
}
