package movegen

import "github.com/Alex7342/BitboatdChessEngine/internal/position"

// Perft counts the leaf nodes of the legal-move tree to the given depth,
// the standard move-generator correctness check.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegal(p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.DoMove(m)
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// PerftDivide returns, for each root move, the leaf-node count of the
// subtree below it - a debugging aid for isolating a generator bug to a
// single root move.
func PerftDivide(p *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}
	moves := GenerateLegal(p)
	for _, m := range moves {
		p.DoMove(m)
		result[m.String()] = Perft(p, depth-1)
		p.UndoMove()
	}
	return result
}
