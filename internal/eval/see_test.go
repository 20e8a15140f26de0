package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

// White pawn on d5 can take a black knight on e6; the knight is defended by
// a bishop on f7 and a rook on e8. Exchange: pawn x knight (+320), bishop x
// pawn (-100), and White has nothing left to recapture with, so SEE is
// 320-100 = 220. The test asserts only the sign.
func TestSeeKnightForPawnIsWinning(t *testing.T) {
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("4r3/5b2/4n3/3P4/8/8/8/4K2k w - - 0 1"))
	m := NewMove(SqD5, SqE6, Normal, PtNone)
	see := SEE(p, m)
	assert.True(t, see > 0, "pawn takes knight defended by bishop/rook should still win material: got %d", see)
}

func TestSeeNonCaptureIsZero(t *testing.T) {
	p := position.New()
	m := NewMove(SqE2, SqE4, Normal, PtNone)
	assert.Equal(t, Value(0), SEE(p, m))
}

func TestSeeLosingCaptureIsNegative(t *testing.T) {
	// White queen takes a pawn on e5 that is defended by a black pawn on d6;
	// queen for pawn is a losing trade.
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("4k3/8/3p4/4p3/8/8/4Q3/4K3 w - - 0 1"))
	m := NewMove(SqE2, SqE5, Normal, PtNone)
	see := SEE(p, m)
	assert.True(t, see < 0, "queen takes defended pawn should be losing: got %d", see)
}

func TestSeeUndefendedCaptureIsJustVictimValue(t *testing.T) {
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("4k3/8/8/4p3/8/8/4R3/4K3 w - - 0 1"))
	m := NewMove(SqE2, SqE5, Normal, PtNone)
	assert.Equal(t, PieceValue(Pawn), SEE(p, m))
}

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	p := position.New()
	assert.Equal(t, Value(0), Evaluate(p))
}

func TestEvaluateFavorsExtraMaterial(t *testing.T) {
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1"))
	assert.True(t, Evaluate(p) > 0)
}
