package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerftStartPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("perft to depth 5 is slow; skipped with -short")
	}
	p := position.New()
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Perft(p, c.depth), "perft depth %d", c.depth)
	}
}

func TestPerftStartPositionDepth6(t *testing.T) {
	if testing.Short() {
		t.Skip("perft to depth 6 is very slow; skipped with -short")
	}
	p := position.New()
	assert.Equal(t, uint64(119060324), Perft(p, 6))
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := position.New()
	divided := PerftDivide(p, 2)
	assert.Len(t, divided, 20, "one entry per legal root move")

	var total uint64
	for _, nodes := range divided {
		total += nodes
	}
	assert.Equal(t, Perft(p, 2), total)
}

func TestPerftKiwipete(t *testing.T) {
	p := &position.Position{}
	require.NoError(t, p.LoadFEN(kiwipeteFEN))
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Perft(p, c.depth), "perft depth %d", c.depth)
	}
}

func TestPerftKiwipeteDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("perft depth 4 on kiwipete is slow; skipped with -short")
	}
	p := &position.Position{}
	require.NoError(t, p.LoadFEN(kiwipeteFEN))
	assert.Equal(t, uint64(4085603), Perft(p, 4))
}

func TestGeneratedMovesNeverLeaveOwnKingInCheck(t *testing.T) {
	positions := []string{
		position.StartFEN,
		kiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range positions {
		p := &position.Position{}
		require.NoError(t, p.LoadFEN(fen))
		moves := GenerateLegal(p)
		us := p.SideToMove()
		for _, m := range moves {
			p.DoMove(m)
			assert.False(t, p.InCheck(us), "move %s left %s's own king in check", m, us)
			p.UndoMove()
		}
	}
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	// Fool's mate final position, white to move, checkmated.
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"))
	moves := GenerateLegal(p)
	assert.Empty(t, moves)
	assert.True(t, p.InCheck(White))
}

func TestStalemateHasNoLegalMovesAndNoCheck(t *testing.T) {
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1"))
	moves := GenerateLegal(p)
	assert.Empty(t, moves)
	assert.False(t, p.InCheck(Black))
}

func TestDoubleCheckOnlyGeneratesKingMoves(t *testing.T) {
	// White king on e1 attacked simultaneously by a rook on e8 (file) and a
	// bishop on h4 (diagonal) - every pseudo-legal move must be a king move.
	// The black king sits out of the way on a8.
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("k3r3/8/8/8/7b/8/8/4K3 w - - 0 1"))
	moves := GeneratePseudoLegal(p)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, SqE1, m.From(), "double check: only king moves should be generated")
	}
}
