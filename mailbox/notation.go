package mailbox

import "strings"

// SquareName returns the algebraic name of sq ("a8" for 0, "h1" for 63), or
// "-" when sq is off the board.
func SquareName(sq Square) string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '8' - byte(sq.Row())})
}

// ParseSquare converts an algebraic square name to a Square. Anything else
// gives NoSquare.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	file := s[0] | 0x20
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare
	}
	return Square(int(file-'a') + int('8'-rank)*8)
}

// SAN returns m in standard algebraic notation for the current position,
// including disambiguation and a check or mate suffix. m must be legal.
func (b *Board) SAN(m Move) string {
	if m.IsNull() {
		return "-"
	}
	var sb strings.Builder
	switch {
	case m.castleKing:
		sb.WriteString("O-O")
	case m.castleQueen:
		sb.WriteString("O-O-O")
	default:
		t := m.piece.Type()
		if t == Pawn {
			if m.IsCapture() {
				sb.WriteByte(SquareName(m.from)[0])
			}
		} else {
			sb.WriteByte(t.Letter())
			sb.WriteString(b.disambiguation(m))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(SquareName(m.to))
		if m.promotion != NoType {
			sb.WriteByte('=')
			sb.WriteByte(m.promotion.Letter())
		}
	}

	b.MakeMove(m)
	if b.InCheck(b.sideToMove) {
		if b.HasLegalMoves() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	b.UnmakeMove(m)
	return sb.String()
}

// disambiguation returns the origin file, rank or both needed to tell m apart
// from other legal moves of the same kind of piece to the same square.
func (b *Board) disambiguation(m Move) string {
	sameFile, sameRank, others := false, false, false
	for _, o := range b.LegalMoves() {
		if o.to != m.to || o.from == m.from || o.piece != m.piece {
			continue
		}
		others = true
		if o.from.File() == m.from.File() {
			sameFile = true
		}
		if o.from.Row() == m.from.Row() {
			sameRank = true
		}
	}
	name := SquareName(m.from)
	switch {
	case !others:
		return ""
	case !sameFile:
		return name[:1]
	case !sameRank:
		return name[1:]
	}
	return name
}

// moveQuery is a partially specified move read from text.
type moveQuery struct {
	piece     PieceType // AnyType when unconstrained
	fromFile  int       // -1 when unconstrained
	fromRow   int       // -1 when unconstrained
	from      Square    // NoSquare when unconstrained
	to        Square
	promotion PieceType // NoType when not given
}

func (q moveQuery) matches(m Move) bool {
	if m.to != q.to {
		return false
	}
	if q.from != NoSquare && m.from != q.from {
		return false
	}
	if q.piece != AnyType && m.piece.Type() != q.piece {
		return false
	}
	if q.fromFile >= 0 && m.from.File() != q.fromFile {
		return false
	}
	if q.fromRow >= 0 && m.from.Row() != q.fromRow {
		return false
	}
	if q.promotion != NoType {
		return m.promotion == q.promotion
	}
	return m.promotion == NoType || m.promotion == Queen
}

// resolve returns the single legal move matching q, or NullMove.
func resolve(legal []Move, q moveQuery) Move {
	found := NullMove
	for _, m := range legal {
		if !q.matches(m) {
			continue
		}
		if !found.IsNull() {
			return NullMove
		}
		found = m
	}
	return found
}

// withDisambiguation fills the origin constraints from a prefix such as "e",
// "1" or "e1". It reports false for anything else.
func (q moveQuery) withDisambiguation(s string) (moveQuery, bool) {
	q.fromFile, q.fromRow = -1, -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'h' && q.fromFile < 0 && q.fromRow < 0:
			q.fromFile = int(c - 'a')
		case c >= '1' && c <= '8' && q.fromRow < 0:
			q.fromRow = int('8' - c)
		default:
			return q, false
		}
	}
	return q, true
}

// ParseMove reads a move for the side to move, in algebraic ("Nf3", "exd5",
// "e8=Q+", "O-O") or coordinate ("g1f3", "e7e8q") form, case-insensitively.
// It returns NullMove unless exactly one legal move matches. A promotion
// without a piece letter is taken as a queen promotion.
func (b *Board) ParseMove(s string) Move {
	s = strings.TrimRight(strings.TrimSpace(s), "+#!?")
	if len(s) < 2 {
		return NullMove
	}
	lower := strings.ToLower(s)
	legal := b.LegalMoves()

	switch lower {
	case "o-o", "0-0":
		for _, m := range legal {
			if m.castleKing {
				return m
			}
		}
		return NullMove
	case "o-o-o", "0-0-0":
		for _, m := range legal {
			if m.castleQueen {
				return m
			}
		}
		return NullMove
	}

	q := moveQuery{piece: AnyType, fromFile: -1, fromRow: -1, from: NoSquare}

	body := lower
	if n := len(body); n >= 3 && strings.ContainsRune("nbrq", rune(body[n-1])) {
		if body[n-2] == '=' {
			q.promotion = PieceTypeFromLetter(body[n-1])
			body = body[:n-2]
		} else if body[n-2] >= '1' && body[n-2] <= '8' {
			q.promotion = PieceTypeFromLetter(body[n-1])
			body = body[:n-1]
		}
	}
	if len(body) < 2 {
		return NullMove
	}
	q.to = ParseSquare(body[len(body)-2:])
	if q.to == NoSquare {
		return NullMove
	}
	prefix := body[:len(body)-2]

	// Coordinate form. "B1c3" also reads as a square prefix, so a miss
	// falls through to algebraic.
	if len(prefix) == 2 {
		if from := ParseSquare(prefix); from != NoSquare {
			cq := q
			cq.from = from
			if m := resolve(legal, cq); !m.IsNull() {
				return m
			}
		}
	}

	prefix = strings.TrimSuffix(prefix, "x")
	if prefix == "" {
		q.piece = Pawn
		return resolve(legal, q)
	}

	first := prefix[0]
	switch first {
	case 'n', 'r', 'q', 'k', 'p':
		q.piece = PieceTypeFromLetter(first)
		if dq, ok := q.withDisambiguation(prefix[1:]); ok {
			return resolve(legal, dq)
		}
		return NullMove
	case 'b':
		// "b" is both the b-file and the bishop; an upper-case B is always a bishop.
		if s[0] == 'b' {
			q.piece = Pawn
			if dq, ok := q.withDisambiguation(prefix); ok {
				if m := resolve(legal, dq); !m.IsNull() {
					return m
				}
			}
		}
		q.piece = Bishop
		if dq, ok := q.withDisambiguation(prefix[1:]); ok {
			return resolve(legal, dq)
		}
		return NullMove
	case 'a', 'c', 'd', 'e', 'f', 'g', 'h':
		q.piece = Pawn
		if dq, ok := q.withDisambiguation(prefix); ok {
			return resolve(legal, dq)
		}
	}
	return NullMove
}
