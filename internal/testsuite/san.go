package testsuite

import (
	"strings"

	"github.com/Alex7342/BitboatdChessEngine/internal/movegen"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

// san renders m in standard algebraic notation relative to p (before m is
// made), including file/rank disambiguation when more than one like piece
// can reach the destination, a capture "x", promotion suffix, and a "+"
// when the resulting position leaves the opponent in check. Good enough to
// match EPD "bm"/"am" target lists; it is a renderer, not a parser.
func san(p *position.Position, m Move, legal []Move) string {
	if m.Type() == Castle {
		if m.To().File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	mover := p.PieceOn(m.From())
	capture := m.Type() == EnPassant || p.PieceOn(m.To()) != NoPiece

	var b strings.Builder
	if mover.Type() == Pawn {
		if capture {
			b.WriteByte(m.From().String()[0])
		}
	} else {
		b.WriteString(strings.ToUpper(mover.Type().String()))
		file, rank := disambiguate(p, m, mover.Type(), legal)
		b.WriteString(file)
		b.WriteString(rank)
	}
	if capture {
		b.WriteByte('x')
	}
	b.WriteString(m.To().String())
	if m.Type() == Promotion {
		b.WriteByte('=')
		b.WriteString(strings.ToUpper(m.Promo().String()))
	}

	p.DoMove(m)
	inCheck := p.InCheck(p.SideToMove())
	mated := inCheck && len(movegen.GenerateLegal(p)) == 0
	p.UndoMove()
	if mated {
		b.WriteByte('#')
	} else if inCheck {
		b.WriteByte('+')
	}
	return b.String()
}

// disambiguate returns the minimal file and/or rank needed to distinguish m
// from other legal moves of the same piece type to the same destination.
func disambiguate(p *position.Position, m Move, pt PieceType, legal []Move) (string, string) {
	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range legal {
		if other.Equal(m) || other.To() != m.To() {
			continue
		}
		if p.PieceOn(other.From()).Type() != pt {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return "", ""
	}
	if !sameFile {
		return m.From().String()[0:1], ""
	}
	if !sameRank {
		return "", m.From().String()[1:2]
	}
	return m.From().String()[0:1], m.From().String()[1:2]
}

// matchesTarget reports whether actualSAN (with trailing annotation
// punctuation stripped) equals any of targets, stripped the same way. Used
// to score the move the engine actually chose against an EPD bm/am list -
// not to find some other legal move that happens to match a target.
func matchesTarget(actualSAN string, targets []string) bool {
	actual := strings.TrimRight(actualSAN, "+#!?")
	for _, t := range targets {
		if actual == strings.TrimRight(t, "+#!?") {
			return true
		}
	}
	return false
}

// renderActual renders m (the engine's chosen move) in SAN for reporting.
func renderActual(p *position.Position, m Move) string {
	if m.IsNull() {
		return "(none)"
	}
	legal := []Move(movegen.GenerateLegal(p))
	return san(p, m, legal)
}
