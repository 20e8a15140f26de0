package position

import (
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
	"github.com/Alex7342/BitboatdChessEngine/internal/zobrist"
)

// DoMove is the engine's only state mutator. m must be a move produced by
// the generator for this position, or the null move. Every field listed in
// the package invariants (pieces, occupancy, squarePiece, hash, castling
// rights, ep target, halfmove clock, side to move, history, undo stack) is
// updated as a single atomic unit from the caller's perspective.
func (p *Position) DoMove(m Move) {
	rec := undoRecord{
		move:          m,
		captured:      PtNone,
		priorCastling: p.castlingRights,
		priorEp:       p.epTarget,
		priorHalfmove: p.halfmoveClock,
	}

	if m.IsNull() {
		p.undo = append(p.undo, rec)
		if p.epTarget != BbEmpty {
			p.hash ^= zobrist.EpFile[p.EpSquare().File()]
			p.epTarget = BbEmpty
		}
		p.hash ^= zobrist.SideToMove
		p.sideToMove = p.sideToMove.Flip()
		p.history = append(p.history, p.hash)
		return
	}

	from, to := m.From(), m.To()
	mover := p.squarePiece[from]
	invariant(mover != NoPiece, "DoMove: no piece on origin square %s for move %s", from, m)
	moverColor := mover.Color()
	moverType := mover.Type()
	enemy := moverColor.Flip()

	switch m.Type() {
	case Normal, Promotion:
		if victim := p.squarePiece[to]; victim != NoPiece {
			rec.captured = victim.Type()
			p.hash ^= zobrist.PieceKey(enemy, victim.Type(), to)
			p.remove(enemy, victim.Type(), to)
		}
		p.hash ^= zobrist.PieceKey(moverColor, moverType, from)
		p.remove(moverColor, moverType, from)
		landingType := moverType
		if m.Type() == Promotion {
			landingType = m.Promo()
		}
		p.hash ^= zobrist.PieceKey(moverColor, landingType, to)
		p.put(moverColor, landingType, to)

	case EnPassant:
		victimSq := epVictimSquare(from, to)
		rec.captured = Pawn
		p.hash ^= zobrist.PieceKey(enemy, Pawn, victimSq)
		p.remove(enemy, Pawn, victimSq)
		p.hash ^= zobrist.PieceKey(moverColor, Pawn, from)
		p.remove(moverColor, Pawn, from)
		p.hash ^= zobrist.PieceKey(moverColor, Pawn, to)
		p.put(moverColor, Pawn, to)

	case Castle:
		p.hash ^= zobrist.PieceKey(moverColor, King, from)
		p.remove(moverColor, King, from)
		p.hash ^= zobrist.PieceKey(moverColor, King, to)
		p.put(moverColor, King, to)
		rookFrom, rookTo := castleRookSquares(to)
		p.hash ^= zobrist.PieceKey(moverColor, Rook, rookFrom)
		p.remove(moverColor, Rook, rookFrom)
		p.hash ^= zobrist.PieceKey(moverColor, Rook, rookTo)
		p.put(moverColor, Rook, rookTo)
	}

	newCr := newCastlingRights(p.castlingRights, moverType, moverColor, from, to)
	if newCr != p.castlingRights {
		p.hash ^= zobrist.Castling[p.castlingRights]
		p.hash ^= zobrist.Castling[newCr]
		p.castlingRights = newCr
	}

	if p.epTarget != BbEmpty {
		p.hash ^= zobrist.EpFile[p.EpSquare().File()]
		p.epTarget = BbEmpty
	}
	if moverType == Pawn && SquareDistance(from, to) == 2 && m.Type() == Normal {
		skip := MakeSquare(from.File(), (from.Rank()+to.Rank())/2)
		p.epTarget = skip.Bb()
		p.hash ^= zobrist.EpFile[skip.File()]
	}

	if rec.captured != PtNone || moverType == Pawn {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if moverColor == Black {
		p.fullmoveNumber++
	}

	p.hash ^= zobrist.SideToMove
	p.sideToMove = enemy
	p.undo = append(p.undo, rec)
	p.history = append(p.history, p.hash)
}

// UndoMove inverts the most recent DoMove (or the null move), restoring
// every tracked field to its value before that call.
func (p *Position) UndoMove() {
	n := len(p.undo)
	invariant(n > 0, "UndoMove: undo stack is empty")
	rec := p.undo[n-1]
	p.undo = p.undo[:n-1]
	p.history = p.history[:len(p.history)-1]

	m := rec.move
	p.sideToMove = p.sideToMove.Flip()
	p.castlingRights = rec.priorCastling
	p.epTarget = rec.priorEp
	p.halfmoveClock = rec.priorHalfmove
	p.hash = p.history[len(p.history)-1]

	if m.IsNull() {
		return
	}

	from, to := m.From(), m.To()
	moverColor := p.sideToMove
	enemy := moverColor.Flip()

	if moverColor == Black {
		p.fullmoveNumber--
	}

	switch m.Type() {
	case Normal, Promotion:
		landingType := p.squarePiece[to].Type()
		p.remove(moverColor, landingType, to)
		moverType := landingType
		if m.Type() == Promotion {
			moverType = Pawn
		}
		p.put(moverColor, moverType, from)
		if rec.captured != PtNone {
			p.put(enemy, rec.captured, to)
		}

	case EnPassant:
		p.remove(moverColor, Pawn, to)
		p.put(moverColor, Pawn, from)
		p.put(enemy, Pawn, epVictimSquare(from, to))

	case Castle:
		p.remove(moverColor, King, to)
		p.put(moverColor, King, from)
		rookFrom, rookTo := castleRookSquares(to)
		p.remove(moverColor, Rook, rookTo)
		p.put(moverColor, Rook, rookFrom)
	}
}

// LastMove returns the most recently made move, or NoMove if the undo
// stack is empty. Used by search's zugzwang and double-null-move guards.
func (p *Position) LastMove() Move {
	if len(p.undo) == 0 {
		return NoMove
	}
	return p.undo[len(p.undo)-1].move
}
