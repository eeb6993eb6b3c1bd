package mailbox

import (
	"fmt"
	"strings"
)

// Move is an immutable description of one move together with the board state
// needed to take it back. Build one with NewMove against the position it will
// be played in.
type Move struct {
	from, to  Square
	piece     Piece
	captured  Piece
	promotion PieceType

	enPassant   bool
	castleKing  bool
	castleQueen bool

	// Irreversible state before the move.
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
}

// NullMove is the "no move" value. Making or unmaking it changes nothing.
var NullMove = Move{from: NoSquare, to: NoSquare, prevEnPassant: NoSquare}

// NewMove describes moving the piece on from to to in position b. It detects
// en passant and castling and snapshots the state UnmakeMove will restore.
// Promotion is chosen separately with WithPromotion.
func NewMove(b *Board, from, to Square) Move {
	if !from.Valid() || !to.Valid() || from == to {
		return NullMove
	}
	m := Move{
		from:          from,
		to:            to,
		piece:         b.squares[from],
		captured:      b.squares[to],
		prevCastling:  b.castling,
		prevEnPassant: b.enPassant,
		prevHalfmove:  b.halfmoveClock,
	}
	switch m.piece.Type() {
	case Pawn:
		if to == b.enPassant && m.captured == NoPiece {
			m.enPassant = true
			m.captured = NewPiece(m.piece.Side().Other(), Pawn)
		}
	case King:
		switch int(to) - int(from) {
		case 2:
			m.castleKing = true
		case -2:
			m.castleQueen = true
		}
	}
	return m
}

// WithPromotion returns a copy of m that promotes to t.
func (m Move) WithPromotion(t PieceType) Move {
	m.promotion = t
	return m
}

// From returns the origin square.
func (m Move) From() Square { return m.from }

// To returns the destination square.
func (m Move) To() Square { return m.to }

// Piece returns the moving piece.
func (m Move) Piece() Piece { return m.piece }

// Captured returns the captured piece or NoPiece. For en passant it is the
// pawn taken beside the destination.
func (m Move) Captured() Piece { return m.captured }

// Promotion returns the promotion type or NoType.
func (m Move) Promotion() PieceType { return m.promotion }

func (m Move) IsCapture() bool     { return m.captured != NoPiece }
func (m Move) IsEnPassant() bool   { return m.enPassant }
func (m Move) IsPromotion() bool   { return m.promotion != NoType }
func (m Move) IsCastle() bool      { return m.castleKing || m.castleQueen }
func (m Move) IsKingCastle() bool  { return m.castleKing }
func (m Move) IsQueenCastle() bool { return m.castleQueen }

// IsNull reports whether m does not describe a real move.
func (m Move) IsNull() bool {
	return !m.from.Valid() || !m.to.Valid() || m.from == m.to
}

// Equal compares origin, destination and promotion only.
func (m Move) Equal(o Move) bool {
	return m.from == o.from && m.to == o.to && m.promotion == o.promotion
}

// ContainsMove reports whether list holds a move Equal to m.
func ContainsMove(list []Move, m Move) bool {
	for _, x := range list {
		if x.Equal(m) {
			return true
		}
	}
	return false
}

// String returns the coordinate form, e.g. "e2e4", "e7e8q", or "0000".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := SquareName(m.from) + SquareName(m.to)
	if m.promotion != NoType {
		s += strings.ToLower(string(m.promotion.Letter()))
	}
	return s
}

// Describe returns a multi-line dump of every field, for debugging.
func (m Move) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Move %s\n", m)
	fmt.Fprintf(&sb, "  piece %s from %s to %s\n", m.piece, SquareName(m.from), SquareName(m.to))
	if m.captured != NoPiece {
		fmt.Fprintf(&sb, "  captures %s\n", m.captured)
	}
	if m.promotion != NoType {
		fmt.Fprintf(&sb, "  promotes to %c\n", m.promotion.Letter())
	}
	if m.enPassant {
		sb.WriteString("  en passant\n")
	}
	if m.castleKing {
		sb.WriteString("  castles king-side\n")
	}
	if m.castleQueen {
		sb.WriteString("  castles queen-side\n")
	}
	fmt.Fprintf(&sb, "  before: castling %s, en passant %s, halfmove %d\n",
		castlingString(m.prevCastling), SquareName(m.prevEnPassant), m.prevHalfmove)
	return sb.String()
}
