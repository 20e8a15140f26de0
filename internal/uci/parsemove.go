package uci

import (
	"fmt"

	"github.com/Alex7342/BitboatdChessEngine/internal/movegen"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

var promoLetters = map[byte]PieceType{'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight}

// ParseMove decodes a UCI long-algebraic move string against p and
// validates it is actually legal there: four characters (from-square,
// to-square) plus an optional promotion letter. Move type is inferred from
// the position rather than the string - a king move spanning two files is
// a castle, a pawn move onto the en-passant square is an en passant
// capture - then cross-checked against the legal move list so an illegal
// or malformed string is rejected without mutating p.
func ParseMove(p *position.Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("malformed uci move %q: wrong length", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("malformed uci move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("malformed uci move %q: %w", s, err)
	}
	var promo PieceType = PtNone
	if len(s) == 5 {
		pt, ok := promoLetters[s[4]]
		if !ok {
			return NoMove, fmt.Errorf("malformed uci move %q: invalid promotion letter", s)
		}
		promo = pt
	}

	mover := p.PieceOn(from)
	mt := Normal
	switch {
	case mover.Type() == King && SquaresBetween(from, to) != BbEmpty && from.Rank() == to.Rank() &&
		SquareDistance(from, to) == 2:
		mt = Castle
	case mover.Type() == Pawn && to == p.EpSquare():
		mt = EnPassant
	case promo != PtNone:
		mt = Promotion
	}

	candidate := NewMove(from, to, mt, promo)
	for _, m := range movegen.GenerateLegal(p) {
		if m.Equal(candidate) {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("move %q is not legal in the current position", s)
}
