package mailbox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every error ParseFEN returns.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN builds a Board from a FEN string. The first four fields are
// required. An unreadable en-passant field means no target, and missing or
// unreadable clocks default to 0 and 1.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenError("expected at least 4 fields, got %d", len(fields))
	}

	b := newEmptyBoard()

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("expected 8 ranks, got %d", len(ranks))
	}
	for row, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return nil, fenError("rank %d has more than 8 squares", 8-row)
				}
				continue
			}
			p := PieceFromChar(ch)
			if p == NoPiece {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenError("rank %d has more than 8 squares", 8-row)
			}
			b.placePiece(p, Square(row*8+file))
			file++
		}
		if file != 8 {
			return nil, fenError("rank %d has %d squares", 8-row, file)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fenError("side to move must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling rights; unknown letters are skipped.
	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			b.castling |= CastleWhiteKing
		case 'Q':
			b.castling |= CastleWhiteQueen
		case 'k':
			b.castling |= CastleBlackKing
		case 'q':
			b.castling |= CastleBlackQueen
		}
	}

	// 4. En passant target
	b.enPassant = ParseSquare(fields[3])

	// 5-6. Clocks
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil && n >= 0 {
			b.halfmoveClock = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			b.moveCounter = n
		}
	}

	b.hash = b.ComputeHash()
	return b, nil
}

// MustParseFEN is ParseFEN for known-good input; it panics on error.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

func castlingString(cr CastlingRights) string {
	if cr == 0 {
		return "-"
	}
	var sb strings.Builder
	if cr&CastleWhiteKing != 0 {
		sb.WriteByte('K')
	}
	if cr&CastleWhiteQueen != 0 {
		sb.WriteByte('Q')
	}
	if cr&CastleBlackKing != 0 {
		sb.WriteByte('k')
	}
	if cr&CastleBlackQueen != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// FEN returns the position in Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[row*8+file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(castlingString(b.castling))
	sb.WriteByte(' ')
	if b.enPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(SquareName(b.enPassant))
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.moveCounter))
	return sb.String()
}
