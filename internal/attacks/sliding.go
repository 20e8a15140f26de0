package attacks

import . "github.com/Alex7342/BitboatdChessEngine/internal/types"

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// rookMask[s] / bishopMask[s] hold the occupancy-relevant squares for a
// slider on s: the inner squares of its rays, excluding the board edge the
// ray runs into (an edge square never blocks further movement since the
// ray terminates there regardless of its occupant).
var rookMask [SqLength]Bitboard
var bishopMask [SqLength]Bitboard

// rookOffset/bishopOffset[s] is where square s's block starts in the shared
// attack table; each block holds 2^popcount(mask[s]) entries.
var rookOffset [SqLength]int
var bishopOffset [SqLength]int

var rookAttackTable []Bitboard
var bishopAttackTable []Bitboard

// step moves one square in direction d from s, returning SqNone if that
// would leave the board.
func step(s Square, d Direction) Square {
	f, r := s.File(), s.Rank()
	var nf, nr int
	switch d {
	case North:
		nf, nr = f, r+1
	case South:
		nf, nr = f, r-1
	case East:
		nf, nr = f+1, r
	case West:
		nf, nr = f-1, r
	case NorthEast:
		nf, nr = f+1, r+1
	case NorthWest:
		nf, nr = f-1, r+1
	case SouthEast:
		nf, nr = f+1, r-1
	case SouthWest:
		nf, nr = f-1, r-1
	}
	if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
		return SqNone
	}
	return MakeSquare(nf, nr)
}

// rayAttacks walks each of the four given directions from sq, adding every
// square reached (including the blocker itself, so it can be captured) and
// stopping a ray once it hits an occupied square or the board edge.
func rayAttacks(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := step(s, d)
			if next == SqNone {
				break
			}
			attack = attack.Set(next)
			if occupied.Has(next) {
				break
			}
			s = next
		}
	}
	return attack
}

func init() {
	rookSize := 0
	bishopSize := 0
	for s := SqA1; s < SqNone; s++ {
		edges := ((Rank1 | Rank8) &^ RankMask(s.Rank())) | ((FileA | FileH) &^ FileMask(s.File()))
		rookMask[s] = rayAttacks(rookDirs, s, BbEmpty) &^ edges
		bishopMask[s] = rayAttacks(bishopDirs, s, BbEmpty) &^ edges
		rookOffset[s] = rookSize
		bishopOffset[s] = bishopSize
		rookSize += 1 << rookMask[s].PopCount()
		bishopSize += 1 << bishopMask[s].PopCount()
	}

	rookAttackTable = make([]Bitboard, rookSize)
	bishopAttackTable = make([]Bitboard, bishopSize)

	for s := SqA1; s < SqNone; s++ {
		mask := rookMask[s]
		subsets(mask, func(occ Bitboard) {
			idx := pext(uint64(occ), uint64(mask))
			rookAttackTable[rookOffset[s]+int(idx)] = rayAttacks(rookDirs, s, occ)
		})
		mask = bishopMask[s]
		subsets(mask, func(occ Bitboard) {
			idx := pext(uint64(occ), uint64(mask))
			bishopAttackTable[bishopOffset[s]+int(idx)] = rayAttacks(bishopDirs, s, occ)
		})
	}
}

// RookAttacks returns the rook attack set from s given the full board
// occupancy (blockers outside the relevant mask do not affect the result).
func RookAttacks(s Square, occupied Bitboard) Bitboard {
	idx := pext(uint64(occupied), uint64(rookMask[s]))
	return rookAttackTable[rookOffset[s]+int(idx)]
}

// BishopAttacks returns the bishop attack set from s given the full board
// occupancy.
func BishopAttacks(s Square, occupied Bitboard) Bitboard {
	idx := pext(uint64(occupied), uint64(bishopMask[s]))
	return bishopAttackTable[bishopOffset[s]+int(idx)]
}

// QueenAttacks returns the union of rook and bishop attacks from s.
func QueenAttacks(s Square, occupied Bitboard) Bitboard {
	return RookAttacks(s, occupied) | BishopAttacks(s, occupied)
}

// AttacksBb is the single dispatch point move generation and the in-check
// test use to get a piece's attack set given the current occupancy.
func AttacksBb(pt PieceType, c Color, s Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks(c, s)
	case Knight:
		return KnightAttacks(s)
	case Bishop:
		return BishopAttacks(s, occupied)
	case Rook:
		return RookAttacks(s, occupied)
	case Queen:
		return QueenAttacks(s, occupied)
	case King:
		return KingAttacks(s)
	}
	return BbEmpty
}
