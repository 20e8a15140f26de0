// Package movegen generates pseudo-legal and legal moves for a position:
// per-piece pseudo-legal generation, a dedicated check-evasion generator
// for single and double check, and legal filtering via the position's
// make/unmake protocol.
package movegen

import (
	"github.com/Alex7342/BitboatdChessEngine/internal/attacks"
	"github.com/Alex7342/BitboatdChessEngine/internal/moveslice"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

var promoTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateLegal returns every legal move available to the side to move.
// It is the entry point search, perft and the UCI boundary all use.
func GenerateLegal(p *position.Position) moveslice.MoveSlice {
	pseudo := GeneratePseudoLegal(p)
	legal := moveslice.New(len(pseudo))
	us := p.SideToMove()
	for _, m := range pseudo {
		p.DoMove(m)
		if !p.InCheck(us) {
			legal.PushBack(m)
		}
		p.UndoMove()
	}
	return legal
}

// GeneratePseudoLegal returns every pseudo-legal move for the side to move:
// moves that respect piece movement rules but may leave the mover's own
// king in check. In check it dispatches to the evasion generator;
// otherwise it generates normally (including castling).
func GeneratePseudoLegal(p *position.Position) moveslice.MoveSlice {
	us := p.SideToMove()
	kingSq := p.KingSquare(us)
	checkers := position.AttackersTo(p, kingSq, us.Flip())

	switch checkers.PopCount() {
	case 0:
		moves := moveslice.New(48)
		generateKingMoves(p, us, BbAll, &moves)
		generateCastling(p, us, &moves)
		generateNonKingMoves(p, us, BbAll, &moves)
		return moves
	case 1:
		attacker := checkers.Lsb()
		blockMask := checkers | SquaresBetween(kingSq, attacker)
		moves := moveslice.New(16)
		generateKingMoves(p, us, BbAll, &moves)
		generateNonKingMoves(p, us, blockMask, &moves)
		return moves
	default: // double check: only the king can move
		moves := moveslice.New(8)
		generateKingMoves(p, us, BbAll, &moves)
		return moves
	}
}

// destMaskFor restricts a piece's raw attack set to empty-or-enemy squares
// (never the enemy king) intersected with the caller-supplied destination
// mask.
func destMaskFor(p *position.Position, us Color, targets, destMask Bitboard) Bitboard {
	enemyKing := p.PiecesBb(us.Flip(), King)
	return targets &^ p.Occupied(us) &^ enemyKing & destMask
}

func generateKingMoves(p *position.Position, us Color, destMask Bitboard, out *moveslice.MoveSlice) {
	from := p.KingSquare(us)
	targets := destMaskFor(p, us, attacks.KingAttacks(from), destMask)
	for targets != BbEmpty {
		to := targets.PopLsb()
		out.PushBack(NewMove(from, to, Normal, PtNone))
	}
}

func generateNonKingMoves(p *position.Position, us Color, destMask Bitboard, out *moveslice.MoveSlice) {
	generatePawnMoves(p, us, destMask, out)
	for pt := Knight; pt <= Queen; pt++ {
		generatePieceMoves(p, us, pt, destMask, out)
	}
}

func generatePieceMoves(p *position.Position, us Color, pt PieceType, destMask Bitboard, out *moveslice.MoveSlice) {
	occ := p.OccupiedAll()
	pieces := p.PiecesBb(us, pt)
	for pieces != BbEmpty {
		from := pieces.PopLsb()
		targets := destMaskFor(p, us, attacks.AttacksBb(pt, us, from, occ), destMask)
		for targets != BbEmpty {
			to := targets.PopLsb()
			out.PushBack(NewMove(from, to, Normal, PtNone))
		}
	}
}

// generatePawnMoves emits single/double pushes, diagonal captures, en
// passant captures, and the four promotion variants for any push or
// capture landing on the back rank - all restricted to destMask (the
// capture-or-block mask while in check).
func generatePawnMoves(p *position.Position, us Color, destMask Bitboard, out *moveslice.MoveSlice) {
	occ := p.OccupiedAll()
	enemy := p.Occupied(us.Flip())
	promoRank := Rank8
	startRank := Rank2
	if us == Black {
		promoRank = Rank1
		startRank = Rank7
	}

	pawns := p.PiecesBb(us, Pawn)
	for pawns != BbEmpty {
		from := pawns.PopLsb()

		// Single push.
		push := attacks.PawnPush(us, from) &^ occ
		if push != BbEmpty && push&destMask != BbEmpty {
			to := push.Lsb()
			emitPawnMove(from, to, promoRank, out)
		}
		// Double push: both squares empty, only from the starting rank.
		if push != BbEmpty && from.Bb()&startRank != BbEmpty {
			double := attacks.PawnPush(us, push.Lsb()) &^ occ
			if double != BbEmpty && double&destMask != BbEmpty {
				out.PushBack(NewMove(from, double.Lsb(), Normal, PtNone))
			}
		}
		// Diagonal captures.
		caps := attacks.PawnAttacks(us, from) & enemy & destMask
		for caps != BbEmpty {
			to := caps.PopLsb()
			emitPawnMove(from, to, promoRank, out)
		}
		// En passant: destMask check uses the captured pawn's square too,
		// since capturing the checking pawn en passant is a legal evasion.
		if p.EpSquare() != SqNone {
			epBb := p.EpSquare().Bb()
			if attacks.PawnAttacks(us, from)&epBb != BbEmpty {
				victimSq := MakeSquare(p.EpSquare().File(), from.Rank())
				if (epBb&destMask != BbEmpty) || (victimSq.Bb()&destMask != BbEmpty) {
					out.PushBack(NewMove(from, p.EpSquare(), EnPassant, PtNone))
				}
			}
		}
	}
}

func emitPawnMove(from, to Square, promoRank Bitboard, out *moveslice.MoveSlice) {
	if to.Bb()&promoRank != BbEmpty {
		for _, pt := range promoTypes {
			out.PushBack(NewMove(from, to, Promotion, pt))
		}
		return
	}
	out.PushBack(NewMove(from, to, Normal, PtNone))
}

// generateCastling emits available castling moves. The squares between
// king and rook must be empty; the king's current square and every square
// it passes through, including the destination, must not be attacked. The
// rook's transit squares need only be empty, not safe.
func generateCastling(p *position.Position, us Color, out *moveslice.MoveSlice) {
	occ := p.OccupiedAll()
	rights := p.CastlingRights()
	enemy := us.Flip()

	try := func(right CastlingRights, kingFrom, kingTo, rookFrom Square, kingPath Bitboard) {
		if rights&right == 0 {
			return
		}
		if SquaresBetween(kingFrom, rookFrom)&occ != BbEmpty {
			return
		}
		path := kingPath
		for path != BbEmpty {
			sq := path.PopLsb()
			if p.IsAttacked(sq, enemy) {
				return
			}
		}
		out.PushBack(NewMove(kingFrom, kingTo, Castle, PtNone))
	}

	if us == White {
		try(WhiteKingside, SqE1, SqG1, SqH1, SqE1.Bb()|SqF1.Bb()|SqG1.Bb())
		try(WhiteQueenside, SqE1, SqC1, SqA1, SqE1.Bb()|SqD1.Bb()|SqC1.Bb())
	} else {
		try(BlackKingside, SqE8, SqG8, SqH8, SqE8.Bb()|SqF8.Bb()|SqG8.Bb())
		try(BlackQueenside, SqE8, SqC8, SqA8, SqE8.Bb()|SqD8.Bb()|SqC8.Bb())
	}
}
