// Package types holds the primitive vocabulary shared by every other
// package in the engine: squares, colors, piece types, bitboards and
// moves. Nothing in here depends on position or search state.
package types

import "fmt"

// Color is the side to move or the owner of a piece.
type Color int8

const (
	White Color = iota
	Black
	ColorNone
	ColorLength = 2
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// PieceType identifies a kind of chess piece, independent of color.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = 6
)

var pieceTypeLetters = [PtLength]string{"p", "n", "b", "r", "q", "k"}

func (pt PieceType) String() string {
	if pt < 0 || pt >= PtLength {
		return "-"
	}
	return pieceTypeLetters[pt]
}

// Piece is a (Color, PieceType) pair packed into a single byte, with
// NoPiece representing an empty square.
type Piece int8

const NoPiece Piece = -1

// MakePiece packs a color and piece type into a Piece value.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)*PtLength + int8(pt))
}

// Color returns the owning color of the piece.
func (p Piece) Color() Color {
	return Color(p / PtLength)
}

// Type returns the piece type, discarding color.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return PtNone
	}
	return PieceType(p % PtLength)
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	s := p.Type().String()
	if p.Color() == White {
		return string(s[0] - 'a' + 'A')
	}
	return s
}

// Square is a board square numbered 0..63, rank-major: square = 8*rank+file.
// Rank 0 is White's back rank, file 0 is the a-file.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = 64
)

// File returns the file (0=a..7=h) of the square.
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the rank (0..7) of the square.
func (s Square) Rank() int {
	return int(s) >> 3
}

// MakeSquare builds a square from a file and rank, each 0..7.
func MakeSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s >= SqA1 && s < SqNone
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+rune(s.File()), '1'+rune(s.Rank()))
}

// ParseSquare parses an algebraic square such as "e4".
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return SqNone, fmt.Errorf("invalid square %q", str)
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone, fmt.Errorf("invalid square %q", str)
	}
	return MakeSquare(file, rank), nil
}

// Direction is a one-square step on the board, expressed as the delta
// applied to a square index before edge masking.
type Direction int

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)

// CastlingRights is a 4-bit set: {WK, WQ, BK, BQ}.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	CastlingNone = CastlingRights(0)
	CastlingAll  = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr&WhiteKingside != 0 {
		s += "K"
	}
	if cr&WhiteQueenside != 0 {
		s += "Q"
	}
	if cr&BlackKingside != 0 {
		s += "k"
	}
	if cr&BlackQueenside != 0 {
		s += "q"
	}
	return s
}
