package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

func TestParseMoveNormal(t *testing.T) {
	p := position.New()
	m, err := ParseMove(p, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.Type())
}

func TestParseMoveCastle(t *testing.T) {
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))
	m, err := ParseMove(p, "e1g1")
	require.NoError(t, err)
	assert.Equal(t, Castle, m.Type())
}

func TestParseMoveEnPassant(t *testing.T) {
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"))
	m, err := ParseMove(p, "e5d6")
	require.NoError(t, err)
	assert.Equal(t, EnPassant, m.Type())
}

func TestParseMovePromotion(t *testing.T) {
	p := &position.Position{}
	require.NoError(t, p.LoadFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1"))
	m, err := ParseMove(p, "a7a8q")
	require.NoError(t, err)
	assert.Equal(t, Promotion, m.Type())
	assert.Equal(t, Queen, m.Promo())
}

func TestParseMoveRejectsIllegalMove(t *testing.T) {
	p := position.New()
	_, err := ParseMove(p, "e2e5")
	assert.Error(t, err)
}

func TestParseMoveRejectsMalformedString(t *testing.T) {
	p := position.New()
	_, err := ParseMove(p, "zz99")
	assert.Error(t, err)
}
