package mailbox

// forward is the square offset of a single pawn push for side s.
func forward(s Side) Square {
	if s == White {
		return -8
	}
	return 8
}

// Castling rook squares keyed by the king's destination.
var castleRookSquares = map[Square][2]Square{
	62: {63, 61},
	58: {56, 59},
	6:  {7, 5},
	2:  {0, 3},
}

// cornerRights maps a rook home square to the right that depends on it.
var cornerRights = [64]CastlingRights{
	63: CastleWhiteKing,
	56: CastleWhiteQueen,
	7:  CastleBlackKing,
	0:  CastleBlackQueen,
}

func sideRights(s Side) CastlingRights {
	if s == White {
		return CastleWhiteKing | CastleWhiteQueen
	}
	return CastleBlackKing | CastleBlackQueen
}

// MakeMove plays m on the board. m must have been built for the current
// position; the null move is ignored.
func (b *Board) MakeMove(m Move) {
	if m.IsNull() {
		return
	}
	us := m.piece.Side()

	b.history = append(b.history, b.hash)

	b.removePiece(m.to)
	b.placePiece(b.removePiece(m.from), m.to)

	if m.IsCastle() {
		rook := castleRookSquares[m.to]
		b.placePiece(b.removePiece(rook[0]), rook[1])
	}

	cr := b.castling
	if m.piece.Type() == King {
		cr &^= sideRights(us)
	}
	cr &^= cornerRights[m.from]
	cr &^= cornerRights[m.to]
	b.setCastling(cr)

	b.setEnPassant(NoSquare)
	if m.piece.Type() == Pawn {
		if m.enPassant {
			b.removePiece(m.to - forward(us))
		}
		if d := m.to - m.from; d == 16 || d == -16 {
			b.setEnPassant((m.from + m.to) / 2)
		}
		if m.promotion != NoType {
			b.removePiece(m.to)
			b.placePiece(NewPiece(us, m.promotion), m.to)
		}
	}

	if m.piece.Type() == Pawn || m.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.moveCounter++
	}
	b.flipSide()
}

// UnmakeMove takes back m, which must be the last move made on b.
func (b *Board) UnmakeMove(m Move) {
	if m.IsNull() {
		return
	}
	b.flipSide()
	us := m.piece.Side()

	if m.promotion != NoType {
		b.removePiece(m.to)
		b.placePiece(m.piece, m.to)
	}
	b.placePiece(b.removePiece(m.to), m.from)

	if m.captured != NoPiece {
		capSq := m.to
		if m.enPassant {
			capSq = m.to - forward(us)
		}
		b.placePiece(m.captured, capSq)
	}

	if m.IsCastle() {
		rook := castleRookSquares[m.to]
		b.placePiece(b.removePiece(rook[1]), rook[0])
	}

	b.setCastling(m.prevCastling)
	b.setEnPassant(m.prevEnPassant)
	b.halfmoveClock = m.prevHalfmove
	if us == Black {
		b.moveCounter--
	}
	if n := len(b.history); n > 0 {
		b.history = b.history[:n-1]
	}
}
