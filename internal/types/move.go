package types

// MoveType distinguishes the four move encodings.
type MoveType uint16

const (
	Normal MoveType = iota
	Castle
	EnPassant
	Promotion
)

// Move packs (from, to, type, promotion piece) into 16 bits:
// bits 0-5 from, bits 6-11 to, bits 12-13 type, bits 14-15 promotion piece.
// The null move (from=to=0, Normal) is distinguishable from a1-a1, which is
// never a legal move.
type Move uint16

const NoMove Move = 0

// promoPieces maps the 2-bit promotion field to a piece type.
var promoPieces = [4]PieceType{Knight, Bishop, Rook, Queen}
var promoBits = map[PieceType]uint16{Knight: 0, Bishop: 1, Rook: 2, Queen: 3}

// NewMove builds a Move from its logical components.
func NewMove(from, to Square, mt MoveType, promo PieceType) Move {
	var pbits uint16
	if mt == Promotion {
		pbits = promoBits[promo]
	}
	return Move(uint16(from) | uint16(to)<<6 | uint16(mt)<<12 | pbits<<14)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3F) }

// Type returns the move's encoded type.
func (m Move) Type() MoveType { return MoveType((m >> 12) & 0x3) }

// Promo returns the promotion piece type; only meaningful when Type()==Promotion.
func (m Move) Promo() PieceType {
	if m.Type() != Promotion {
		return PtNone
	}
	return promoPieces[(m>>14)&0x3]
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m == NoMove }

// Equal compares two moves by their logical (from, to, type, promotion) tuple.
func (m Move) Equal(o Move) bool {
	return m.From() == o.From() && m.To() == o.To() && m.Type() == o.Type() &&
		(m.Type() != Promotion || m.Promo() == o.Promo())
}

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += m.Promo().String()
	}
	return s
}
