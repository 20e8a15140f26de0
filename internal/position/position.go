// Package position implements the board state machine: piece bitboards,
// side to move, castling rights, en-passant target, move clocks, an
// incrementally maintained Zobrist hash, and the make/unmove protocol that
// is the engine's only state mutator.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Alex7342/BitboatdChessEngine/internal/elog"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
	"github.com/Alex7342/BitboatdChessEngine/internal/zobrist"
)

var log = elog.Get("position")

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoRecord is the minimal information needed to invert a DoMove: the
// move itself, the captured piece type (PtNone if none), and the state
// that isn't otherwise recoverable from the move (castling rights,
// ep-target, halfmove clock, all as they stood before the move).
type undoRecord struct {
	move          Move
	captured      PieceType
	priorCastling CastlingRights
	priorEp       Bitboard
	priorHalfmove int
}

// Position holds a complete, self-consistent chess position.
type Position struct {
	pieces      [ColorLength][PtLength]Bitboard
	occupancy   [ColorLength]Bitboard
	squarePiece [SqLength]Piece

	sideToMove     Color
	castlingRights CastlingRights
	epTarget       Bitboard // at most one bit set
	halfmoveClock  int
	fullmoveNumber int

	hash    zobrist.Key
	history []zobrist.Key
	undo    []undoRecord
}

// New returns the standard chess starting position.
func New() *Position {
	p := &Position{}
	if err := p.LoadFEN(StartFEN); err != nil {
		panic(fmt.Sprintf("invariant violation: built-in start FEN failed to parse: %v", err))
	}
	return p
}

// PiecesBb returns the bitboard of pieces of type pt owned by color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.pieces[c][pt] }

// Occupied returns the union of all pieces owned by color c.
func (p *Position) Occupied(c Color) Bitboard { return p.occupancy[c] }

// OccupiedAll returns the union of all pieces on the board.
func (p *Position) OccupiedAll() Bitboard { return p.occupancy[White] | p.occupancy[Black] }

// PieceOn returns the piece standing on s, or NoPiece if s is empty.
func (p *Position) PieceOn(s Square) Piece { return p.squarePiece[s] }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EpSquare returns the en-passant target square, or SqNone if there is none.
func (p *Position) EpSquare() Square {
	if p.epTarget == BbEmpty {
		return SqNone
	}
	return p.epTarget.Lsb()
}

// HalfmoveClock returns the number of plies since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full move counter.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// ZobristKey returns the current incrementally maintained hash.
func (p *Position) ZobristKey() zobrist.Key { return p.hash }

// History returns the ordered sequence of past hash values, including the
// current one, for repetition detection.
func (p *Position) History() []zobrist.Key { return p.history }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[c][King].Lsb()
}

// recomputeZobrist rebuilds the hash from scratch; used only by property
// tests to verify the incremental maintenance in DoMove/UndoMove never drifts.
func (p *Position) recomputeZobrist() zobrist.Key {
	var h zobrist.Key
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PtLength; pt++ {
			bb := p.pieces[c][pt]
			for bb != BbEmpty {
				s := bb.PopLsb()
				h ^= zobrist.PieceKey(c, pt, s)
			}
		}
	}
	h ^= zobrist.Castling[p.castlingRights]
	if p.epTarget != BbEmpty {
		h ^= zobrist.EpFile[p.EpSquare().File()]
	}
	if p.sideToMove == Black {
		h ^= zobrist.SideToMove
	}
	return h
}

// put places piece (c, pt) on s, updating bitboards, occupancy and the
// square->piece mirror, but not the hash (callers fold the hash delta in
// themselves so DoMove can do it as one XOR per changed feature).
func (p *Position) put(c Color, pt PieceType, s Square) {
	p.pieces[c][pt] = p.pieces[c][pt].Set(s)
	p.occupancy[c] = p.occupancy[c].Set(s)
	p.squarePiece[s] = MakePiece(c, pt)
}

// remove clears piece (c, pt) from s.
func (p *Position) remove(c Color, pt PieceType, s Square) {
	p.pieces[c][pt] = p.pieces[c][pt].Clear(s)
	p.occupancy[c] = p.occupancy[c].Clear(s)
	p.squarePiece[s] = NoPiece
}

// castleRookSquares returns the rook's from/to squares for a castle move
// ending on the king's destination square.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	}
	panic(fmt.Sprintf("invariant violation: %s is not a valid castle destination", kingTo))
}

// epVictimSquare returns the square of the pawn captured en passant, given
// the capturing move's from/to squares: same file as to, same rank as from.
func epVictimSquare(from, to Square) Square {
	return MakeSquare(to.File(), from.Rank())
}

// newCastlingRights recomputes castling rights after a move touching from/to:
// a king move clears both of its color's bits; a rook moving from, or being
// captured on, a corner clears that corner's single bit.
func newCastlingRights(cr CastlingRights, moverType PieceType, moverColor Color, from, to Square) CastlingRights {
	if moverType == King {
		if moverColor == White {
			cr &^= WhiteKingside | WhiteQueenside
		} else {
			cr &^= BlackKingside | BlackQueenside
		}
	}
	for _, sq := range [2]Square{from, to} {
		switch sq {
		case SqA1:
			cr &^= WhiteQueenside
		case SqH1:
			cr &^= WhiteKingside
		case SqA8:
			cr &^= BlackQueenside
		case SqH8:
			cr &^= BlackKingside
		}
	}
	return cr
}

// FEN renders the position in Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			s := MakeSquare(file, rank)
			pc := p.squarePiece[s]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EpSquare().String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

var pieceLetters = map[byte]struct {
	c  Color
	pt PieceType
}{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop},
	'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop},
	'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

// LoadFEN parses a FEN string into the position. On any parse error the
// position is left unmodified (the new state is built up in a scratch
// value and only swapped in on success).
func (p *Position) LoadFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("malformed fen %q: need at least 4 fields", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}

	var np Position
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("malformed fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			info, ok := pieceLetters[ch]
			if !ok {
				return fmt.Errorf("malformed fen %q: unknown piece letter %q", fen, ch)
			}
			if file > 7 {
				return fmt.Errorf("malformed fen %q: rank %d overflows", fen, rank+1)
			}
			np.put(info.c, info.pt, MakeSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("malformed fen %q: rank %d has %d files, want 8", fen, rank+1, file)
		}
	}
	if np.pieces[White][King].PopCount() != 1 || np.pieces[Black][King].PopCount() != 1 {
		return fmt.Errorf("malformed fen %q: each side must have exactly one king", fen)
	}

	switch fields[1] {
	case "w":
		np.sideToMove = White
	case "b":
		np.sideToMove = Black
	default:
		return fmt.Errorf("malformed fen %q: side to move must be w or b, got %q", fen, fields[1])
	}

	for _, ch := range []byte(fields[2]) {
		switch ch {
		case 'K':
			np.castlingRights |= WhiteKingside
		case 'Q':
			np.castlingRights |= WhiteQueenside
		case 'k':
			np.castlingRights |= BlackKingside
		case 'q':
			np.castlingRights |= BlackQueenside
		case '-':
		default:
			return fmt.Errorf("malformed fen %q: bad castling field %q", fen, fields[2])
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return fmt.Errorf("malformed fen %q: bad en passant field: %w", fen, err)
		}
		np.epTarget = sq.Bb()
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return fmt.Errorf("malformed fen %q: bad halfmove clock %q", fen, fields[4])
	}
	np.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		fullmove = 1
	}
	np.fullmoveNumber = fullmove

	np.hash = np.recomputeZobrist()
	np.history = append(np.history, np.hash)
	np.undo = nil

	*p = np
	return nil
}

func invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		msg := fmt.Sprintf(format, args...)
		log.Criticalf("invariant violation: %s", msg)
		panic("invariant violation: " + msg)
	}
}
