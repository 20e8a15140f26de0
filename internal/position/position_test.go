package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

func TestStartPositionInvariants(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAll, p.CastlingRights())
	assert.Equal(t, SqNone, p.EpSquare())
	assert.Equal(t, 1, p.PiecesBb(White, King).PopCount())
	assert.Equal(t, 1, p.PiecesBb(Black, King).PopCount())
	assertConsistent(t, p)
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p := &Position{}
		require.NoError(t, p.LoadFEN(fen))
		assert.Equal(t, fen, p.FEN())
	}
}

func TestLoadFenRejectsMalformedInput(t *testing.T) {
	p := New()
	before := p.FEN()
	err := p.LoadFEN("not a fen string at all")
	assert.Error(t, err)
	assert.Equal(t, before, p.FEN(), "a failed LoadFEN must not mutate the position")
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	p := New()
	before := snapshot(p)

	// 1. e4 e5 2. Nf3
	moves := []Move{
		NewMove(SqE2, SqE4, Normal, PtNone),
		NewMove(SqE7, SqE5, Normal, PtNone),
		NewMove(SqG1, SqF3, Normal, PtNone),
	}
	for _, m := range moves {
		p.DoMove(m)
		assertConsistent(t, p)
	}
	for range moves {
		p.UndoMove()
	}
	assert.Equal(t, before, snapshot(p))
}

func TestCastlingRoundTrip(t *testing.T) {
	p := &Position{}
	require.NoError(t, p.LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))
	before := snapshot(p)

	m := NewMove(SqE1, SqG1, Castle, PtNone)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, Rook), p.PieceOn(SqF1))
	assert.Equal(t, NoPiece, p.PieceOn(SqH1))
	assert.Equal(t, CastlingRights(BlackKingside|BlackQueenside), p.CastlingRights())
	assertConsistent(t, p)

	p.UndoMove()
	assert.Equal(t, before, snapshot(p))
}

func TestEnPassantRoundTrip(t *testing.T) {
	p := &Position{}
	require.NoError(t, p.LoadFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"))
	before := snapshot(p)

	m := NewMove(SqE5, SqD6, EnPassant, PtNone)
	p.DoMove(m)
	assert.Equal(t, NoPiece, p.PieceOn(SqD5), "captured pawn must be removed")
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqD6))
	assertConsistent(t, p)

	p.UndoMove()
	assert.Equal(t, before, snapshot(p))
}

func TestPromotionRoundTrip(t *testing.T) {
	p := &Position{}
	require.NoError(t, p.LoadFEN("8/4P1k1/8/8/8/8/6K1/8 w - - 0 1"))
	before := snapshot(p)

	m := NewMove(SqE7, SqE8, Promotion, Queen)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, Queen), p.PieceOn(SqE8))
	assertConsistent(t, p)

	p.UndoMove()
	assert.Equal(t, before, snapshot(p))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqE7))
}

func TestNullMoveRoundTrip(t *testing.T) {
	p := New()
	before := snapshot(p)
	p.DoMove(NoMove)
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SqNone, p.EpSquare())
	p.UndoMove()
	assert.Equal(t, before, snapshot(p))
}

// snapshot captures every field the package invariants say must round-trip.
type posSnapshot struct {
	fen     string
	hash    uint64
	history int
}

func snapshot(p *Position) posSnapshot {
	return posSnapshot{fen: p.FEN(), hash: uint64(p.hash), history: len(p.history)}
}

// assertConsistent checks core board invariants after every completed make
// (squarePiece agreement, disjoint bitboards, exactly one king per side,
// hash matches a from-scratch recomputation).
func assertConsistent(t *testing.T, p *Position) {
	t.Helper()
	for s := SqA1; s < SqNone; s++ {
		found := NoPiece
		for c := White; c <= Black; c++ {
			for pt := Pawn; pt < PtLength; pt++ {
				if p.pieces[c][pt].Has(s) {
					require.Equal(t, NoPiece, found, "square %s claimed by more than one bitboard", s)
					found = MakePiece(c, pt)
				}
			}
		}
		assert.Equal(t, found, p.squarePiece[s], "squarePiece mismatch at %s", s)
	}
	assert.Equal(t, 1, p.pieces[White][King].PopCount())
	assert.Equal(t, 1, p.pieces[Black][King].PopCount())
	assert.Equal(t, p.recomputeZobrist(), p.hash, "zobrist hash drifted from scratch recomputation")
}
