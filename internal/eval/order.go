package eval

import (
	"github.com/Alex7342/BitboatdChessEngine/internal/history"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

// IsCapture reports whether m removes an enemy piece from the board,
// including en passant.
func IsCapture(p *position.Position, m Move) bool {
	return m.Type() == EnPassant || p.PieceOn(m.To()) != NoPiece
}

// OrderScore ranks a pseudo-legal move for search ordering: captures with
// a non-negative SEE first (ranked among themselves by SEE alone), then
// killer moves, then quiets by history score. A losing capture (SEE<0) is
// deferred behind quiet moves entirely.
func OrderScore(p *position.Position, tables *history.Tables, ply int, m Move) int64 {
	if IsCapture(p, m) {
		if see := SEE(p, m); see >= 0 {
			return int64(history.MaxHistory) + 10000 + int64(see)
		}
		return 0
	}
	if tables.IsKiller(ply, m) {
		return int64(history.MaxHistory) + 10000
	}
	return tables.HistoryScore(p.SideToMove(), m)
}
