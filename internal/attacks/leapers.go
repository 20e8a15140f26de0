package attacks

import . "github.com/Alex7342/BitboatdChessEngine/internal/types"

// pawnPush[color][square] is the single-push target bitboard.
var pawnPush [ColorLength][SqLength]Bitboard

// pawnAttack[color][square] is the diagonal-capture target bitboard.
var pawnAttack [ColorLength][SqLength]Bitboard

// knightAttack[square] and kingAttack[square] are one-shot lookups.
var knightAttack [SqLength]Bitboard
var kingAttack [SqLength]Bitboard

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

func init() {
	for s := SqA1; s < SqNone; s++ {
		f, r := s.File(), s.Rank()

		// White pawns push/attack north, black pawns push/attack south.
		if r < 7 {
			pawnPush[White][s] = MakeSquare(f, r+1).Bb()
		}
		if r > 0 {
			pawnPush[Black][s] = MakeSquare(f, r-1).Bb()
		}
		var wAtk, bAtk Bitboard
		if r < 7 {
			if f > 0 {
				wAtk |= MakeSquare(f-1, r+1).Bb()
			}
			if f < 7 {
				wAtk |= MakeSquare(f+1, r+1).Bb()
			}
		}
		if r > 0 {
			if f > 0 {
				bAtk |= MakeSquare(f-1, r-1).Bb()
			}
			if f < 7 {
				bAtk |= MakeSquare(f+1, r-1).Bb()
			}
		}
		pawnAttack[White][s] = wAtk
		pawnAttack[Black][s] = bAtk

		var n, k Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
				n = n.Set(MakeSquare(nf, nr))
			}
		}
		knightAttack[s] = n
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
				k = k.Set(MakeSquare(nf, nr))
			}
		}
		kingAttack[s] = k
	}
}

// PawnPush returns the single-push target bitboard for a pawn of color c on s.
func PawnPush(c Color, s Square) Bitboard { return pawnPush[c][s] }

// PawnAttacks returns the diagonal-capture target bitboard for a pawn of
// color c on s (also used, inverted, by IsAttacked for pawn defense checks).
func PawnAttacks(c Color, s Square) Bitboard { return pawnAttack[c][s] }

// KnightAttacks returns the knight attack set from s.
func KnightAttacks(s Square) Bitboard { return knightAttack[s] }

// KingAttacks returns the king attack set from s.
func KingAttacks(s Square) Bitboard { return kingAttack[s] }
