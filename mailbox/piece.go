package mailbox

// PieceType is the colorless kind of a piece, stored in the low 3 bits of a Piece.
type PieceType uint8

const (
	NoType PieceType = 0
	Pawn   PieceType = 1
	Rook   PieceType = 2
	Knight PieceType = 3
	Bishop PieceType = 4
	Queen  PieceType = 5
	King   PieceType = 6

	// AnyType matches every piece type while resolving algebraic notation.
	// It is never placed on a square.
	AnyType PieceType = 7
)

// Side identifies a player. The values occupy bits 3 and 4 so that a Piece can be
// built by OR-ing a Side with a PieceType.
type Side uint8

const (
	White Side = 0x08
	Black Side = 0x10

	typeMask = 0x07
	sideMask = 0x18
)

// Other returns the opposing side.
func (s Side) Other() Side { return s ^ sideMask }

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// Piece packs a Side and a PieceType. NoPiece (0) is an empty square.
type Piece uint8

const NoPiece Piece = 0

const (
	WhitePawn   = Piece(White) | Piece(Pawn)
	WhiteRook   = Piece(White) | Piece(Rook)
	WhiteKnight = Piece(White) | Piece(Knight)
	WhiteBishop = Piece(White) | Piece(Bishop)
	WhiteQueen  = Piece(White) | Piece(Queen)
	WhiteKing   = Piece(White) | Piece(King)

	BlackPawn   = Piece(Black) | Piece(Pawn)
	BlackRook   = Piece(Black) | Piece(Rook)
	BlackKnight = Piece(Black) | Piece(Knight)
	BlackBishop = Piece(Black) | Piece(Bishop)
	BlackQueen  = Piece(Black) | Piece(Queen)
	BlackKing   = Piece(Black) | Piece(King)
)

// pieceCodes is the size of any table indexed by a Piece.
const pieceCodes = int(BlackKing) + 1

// NewPiece combines a side with a piece type.
func NewPiece(s Side, t PieceType) Piece {
	if t == NoType {
		return NoPiece
	}
	return Piece(s) | Piece(t&typeMask)
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & typeMask) }

// Side returns the owner of the piece. The result is meaningless for NoPiece.
func (p Piece) Side() Side { return Side(p & sideMask) }

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool { return p == NoPiece }

// typeLetters maps a PieceType to its uppercase letter.
var typeLetters = [8]byte{'.', 'P', 'R', 'N', 'B', 'Q', 'K', '?'}

// Letter returns the uppercase letter of the piece type (P, R, N, B, Q, K).
func (t PieceType) Letter() byte { return typeLetters[t&typeMask] }

// PieceTypeFromLetter converts a letter in either case to a PieceType.
// Unknown letters give NoType.
func PieceTypeFromLetter(ch byte) PieceType {
	switch ch {
	case 'P', 'p':
		return Pawn
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoType
}

// PieceFromChar converts a FEN character to a Piece. Uppercase letters are white.
func PieceFromChar(ch byte) Piece {
	t := PieceTypeFromLetter(ch)
	if t == NoType {
		return NoPiece
	}
	if ch >= 'a' && ch <= 'z' {
		return NewPiece(Black, t)
	}
	return NewPiece(White, t)
}

// Char converts a Piece to its FEN character, '.' for an empty square.
func (p Piece) Char() byte {
	if p == NoPiece {
		return '.'
	}
	ch := p.Type().Letter()
	if p.Side() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }
