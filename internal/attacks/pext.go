// Package attacks builds the immutable attack tables used by move
// generation and the in-check test: leaper attacks for pawns, knights and
// kings, and PEXT-indexed sliding attacks for rooks, bishops and queens.
// Every table here is computed once at package init and never mutated
// afterwards.
package attacks

import "github.com/Alex7342/BitboatdChessEngine/internal/types"

// pext is a parallel bit-extraction: it packs the bits of value at the
// positions set in mask into the low bits of the result, preserving their
// relative order. Real hardware exposes this as a single instruction
// (BMI2 PEXT); lacking an intrinsic in portable Go we fall back to the
// logically equivalent bit-by-bit gather.
func pext(value, mask uint64) uint64 {
	var result uint64
	var bit uint64 = 1
	for mask != 0 {
		maskLsb := mask & (-mask)
		if value&maskLsb != 0 {
			result |= bit
		}
		mask &= mask - 1
		bit <<= 1
	}
	return result
}

// subsets enumerates every subset of mask via the carry-rippler trick,
// starting at (and including) the empty set, and calls fn for each one.
// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
func subsets(mask types.Bitboard, fn func(subset types.Bitboard)) {
	b := types.Bitboard(0)
	for {
		fn(b)
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
}
