package mailbox

import (
	"fmt"
	"strings"
)

// Square is a board index 0..63. Index = file + rank*8 where rank 0 is the top
// row of the diagram (a8..h8) and rank 7 the bottom row (a1..h1).
type Square int

// NoSquare marks an absent square (no en-passant target, missing king).
const NoSquare Square = -1

// File returns the column 0..7 (a..h).
func (sq Square) File() int { return int(sq) % 8 }

// Row returns the geometric row 0..7, top to bottom.
func (sq Square) Row() int { return int(sq) / 8 }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

func (sq Square) String() string { return SquareName(sq) }

// Castling rights bit flags.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen

	CastleAll = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// Home squares used by castling.
const (
	whiteKingHome Square = 60
	blackKingHome Square = 4
)

// Board is a mutable chess position. It is changed in place by MakeMove and
// restored by UnmakeMove; it is not safe for concurrent use.
type Board struct {
	squares [64]Piece

	// pieceSquares[p] holds every square occupied by piece code p, unordered.
	pieceSquares [pieceCodes][]Square
	pieceCount   int

	sideToMove    Side
	castling      CastlingRights
	enPassant     Square
	halfmoveClock int
	moveCounter   int

	hash    uint64
	history []uint64
}

// newEmptyBoard returns a board with no pieces, white to move and no rights.
func newEmptyBoard() *Board {
	InitTables()
	b := &Board{
		sideToMove:  White,
		enPassant:   NoSquare,
		moveCounter: 1,
		history:     make([]uint64, 0, 128),
	}
	for p := range b.pieceSquares {
		b.pieceSquares[p] = make([]Square, 0, 10)
	}
	b.hash = b.ComputeHash()
	return b
}

// NewBoard returns the standard starting position.
func NewBoard() *Board { return MustParseFEN(StartFEN) }

// placePiece puts p on an empty square, updating the occupancy lists and hash.
func (b *Board) placePiece(p Piece, sq Square) {
	if p == NoPiece {
		return
	}
	b.squares[sq] = p
	b.pieceSquares[p] = append(b.pieceSquares[p], sq)
	b.pieceCount++
	b.hash ^= zobristPiece[p][sq]
}

// removePiece clears sq and returns what was there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	b.squares[sq] = NoPiece
	list := b.pieceSquares[p]
	for i, s := range list {
		if s == sq {
			last := len(list) - 1
			list[i] = list[last]
			b.pieceSquares[p] = list[:last]
			break
		}
	}
	b.pieceCount--
	b.hash ^= zobristPiece[p][sq]
	return p
}

// SetPiece replaces the contents of sq. It is meant for setting up positions;
// it does not touch castling rights or history.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.placePiece(p, sq)
}

// ClearSquare removes any piece from sq.
func (b *Board) ClearSquare(sq Square) { b.removePiece(sq) }

func (b *Board) setCastling(cr CastlingRights) {
	if cr == b.castling {
		return
	}
	b.hash ^= zobristCastle[b.castling]
	b.castling = cr
	b.hash ^= zobristCastle[b.castling]
}

func (b *Board) setEnPassant(sq Square) {
	if b.enPassant != NoSquare {
		b.hash ^= zobristEnPassant[b.enPassant.File()]
	}
	b.enPassant = sq
	if b.enPassant != NoSquare {
		b.hash ^= zobristEnPassant[b.enPassant.File()]
	}
}

func (b *Board) flipSide() {
	b.sideToMove = b.sideToMove.Other()
	b.hash ^= zobristBlackToMove
}

// PieceOn returns the piece on sq, or NoPiece when sq is empty or off the board.
func (b *Board) PieceOn(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq]
}

// Squares returns a copy of the squares holding piece p.
func (b *Board) Squares(p Piece) []Square {
	if int(p) >= pieceCodes {
		return nil
	}
	return append([]Square(nil), b.pieceSquares[p]...)
}

// ForEachSquare calls fn for every square holding piece p, without copying.
func (b *Board) ForEachSquare(p Piece, fn func(Square)) {
	if int(p) >= pieceCodes {
		return
	}
	for _, sq := range b.pieceSquares[p] {
		fn(sq)
	}
}

// KingSquare returns the square of side's king or NoSquare.
func (b *Board) KingSquare(s Side) Square {
	kings := b.pieceSquares[NewPiece(s, King)]
	if len(kings) == 0 {
		return NoSquare
	}
	return kings[0]
}

// HasKing reports whether side still has a king on the board.
func (b *Board) HasKing(s Side) bool { return len(b.pieceSquares[NewPiece(s, King)]) > 0 }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Side { return b.sideToMove }

// CastlingRights returns the remaining castling rights.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// EnPassantSquare returns the en-passant target or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassant }

// HalfmoveClock returns plies since the last pawn move or capture.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// MoveCounter returns the full-move number.
func (b *Board) MoveCounter() int { return b.moveCounter }

// Hash returns the running Zobrist key.
func (b *Board) Hash() uint64 { return b.hash }

// HistoryLen returns the number of earlier positions recorded this game.
func (b *Board) HistoryLen() int { return len(b.history) }

// PieceCount returns the number of pieces on the board, kings included.
func (b *Board) PieceCount() int { return b.pieceCount }

// ComputeHash rebuilds the Zobrist key from scratch.
func (b *Board) ComputeHash() uint64 {
	var key uint64
	for sq, p := range b.squares {
		if p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristBlackToMove
	}
	key ^= zobristCastle[b.castling]
	if b.enPassant != NoSquare {
		key ^= zobristEnPassant[b.enPassant.File()]
	}
	return key
}

// Validate cross-checks squares, occupancy lists, piece count and hash.
func (b *Board) Validate() bool {
	count := 0
	for p := range b.pieceSquares {
		for _, sq := range b.pieceSquares[p] {
			if b.squares[sq] != Piece(p) {
				return false
			}
			count++
		}
	}
	occupied := 0
	for _, p := range b.squares {
		if p != NoPiece {
			occupied++
		}
	}
	if count != occupied || count != b.pieceCount {
		return false
	}
	return b.hash == b.ComputeHash()
}

// RepetitionCount returns how often the current position occurred earlier.
func (b *Board) RepetitionCount() int {
	n := 0
	for _, h := range b.history {
		if h == b.hash {
			n++
		}
	}
	return n
}

// IsRepetition reports whether the current position was already seen this game.
func (b *Board) IsRepetition() bool {
	for i := len(b.history) - 1; i >= 0; i-- {
		if b.history[i] == b.hash {
			return true
		}
	}
	return false
}

// IsThreefold reports whether the current position is its third occurrence.
func (b *Board) IsThreefold() bool { return b.RepetitionCount() >= 2 }

// IsDrawBy50 reports a fifty-move rule draw.
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// IsBareKings reports whether only the two kings are left.
func (b *Board) IsBareKings() bool { return b.pieceCount <= 2 }

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && len(b.LegalMoves()) == 0
}

// InStalemate reports whether the side to move has no legal move and is not in check.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && len(b.LegalMoves()) == 0
}

// String renders the board as a diagram followed by the irreversible state.
func (b *Board) String() string {
	var sb strings.Builder
	for sq, p := range b.squares {
		sb.WriteByte(p.Char())
		if sq%8 == 7 {
			sb.WriteByte('\n')
		}
	}
	fmt.Fprintf(&sb, "Side to move: %s\n", b.sideToMove)
	fmt.Fprintf(&sb, "Castling rights: %s\n", castlingString(b.castling))
	fmt.Fprintf(&sb, "En passant square: %s\n", SquareName(b.enPassant))
	fmt.Fprintf(&sb, "Move %d, (%d)\n", b.moveCounter, b.halfmoveClock)
	return sb.String()
}
