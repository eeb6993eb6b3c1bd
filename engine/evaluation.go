package engine

import (
	"mailbox-chess/mailbox"
)

// Piece count of a full board; evaluation phase runs from 32 down to the two kings.
const (
	fullBoardPieces = 32
	phaseSpan       = 29
	castlingBonus   = 25
)

// Piece-square tables (midgame and endgame) indexed by piece type, from white's
// side of the board: index 0 is a8, index 63 is h1. Values include material.
var PSQT_MG = [7][64]int32{
	mailbox.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		200, 200, 200, 200, 200, 200, 200, 200,
		180, 180, 180, 180, 180, 180, 180, 180,
		160, 160, 160, 160, 160, 160, 160, 160,
		130, 140, 140, 150, 150, 100, 90, 90,
		110, 120, 100, 130, 130, 90, 100, 100,
		90, 100, 100, 90, 90, 100, 100, 100,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	mailbox.Rook: {
		480, 490, 490, 490, 490, 490, 490, 480,
		510, 520, 520, 520, 520, 520, 520, 510,
		490, 500, 500, 500, 500, 500, 500, 490,
		490, 500, 500, 500, 500, 500, 500, 490,
		490, 500, 500, 500, 500, 500, 500, 490,
		490, 500, 500, 500, 500, 500, 500, 490,
		490, 500, 500, 500, 500, 500, 500, 490,
		480, 490, 490, 490, 490, 490, 490, 480,
	},
	mailbox.Knight: {
		240, 250, 260, 260, 260, 260, 250, 240,
		250, 260, 280, 280, 280, 280, 260, 250,
		260, 280, 300, 300, 300, 300, 280, 260,
		260, 280, 300, 300, 300, 300, 280, 260,
		260, 280, 300, 300, 300, 300, 280, 260,
		260, 280, 300, 300, 300, 300, 280, 260,
		250, 260, 280, 280, 280, 280, 260, 250,
		240, 250, 260, 260, 260, 260, 250, 240,
	},
	mailbox.Bishop: {
		280, 280, 260, 260, 260, 260, 280, 280,
		280, 300, 300, 280, 280, 300, 300, 280,
		260, 300, 300, 300, 300, 300, 300, 260,
		260, 280, 300, 320, 320, 300, 280, 260,
		260, 280, 320, 320, 320, 320, 280, 260,
		260, 320, 320, 320, 320, 320, 320, 260,
		300, 320, 320, 300, 300, 320, 320, 300,
		300, 300, 280, 280, 280, 280, 300, 300,
	},
	mailbox.Queen: {
		890, 890, 890, 890, 890, 890, 890, 880,
		890, 900, 900, 900, 900, 900, 900, 890,
		890, 900, 900, 900, 900, 900, 900, 890,
		890, 900, 900, 900, 900, 900, 900, 890,
		890, 900, 900, 900, 900, 900, 900, 890,
		890, 900, 900, 900, 900, 900, 900, 890,
		890, 900, 900, 900, 900, 900, 900, 890,
		880, 890, 890, 890, 890, 890, 890, 880,
	},
	mailbox.King: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 100, 0, 0, 0, 0, 100, 0,
		100, 200, 100, 0, 0, 100, 200, 100,
	},
}

var PSQT_EG = [7][64]int32{
	mailbox.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		250, 250, 250, 250, 250, 250, 250, 250,
		200, 200, 200, 200, 200, 200, 200, 200,
		160, 160, 160, 160, 160, 160, 160, 160,
		130, 130, 130, 130, 130, 130, 130, 130,
		110, 110, 110, 110, 110, 110, 110, 110,
		100, 100, 100, 100, 100, 100, 100, 100,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	mailbox.Rook: {
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
		500, 500, 500, 500, 500, 500, 500, 500,
	},
	mailbox.Knight: {
		240, 250, 260, 260, 260, 260, 250, 240,
		250, 260, 280, 280, 280, 280, 260, 250,
		260, 280, 300, 300, 300, 300, 280, 260,
		260, 280, 300, 300, 300, 300, 280, 260,
		260, 280, 300, 300, 300, 300, 280, 260,
		260, 280, 300, 300, 300, 300, 280, 260,
		250, 260, 280, 280, 280, 280, 260, 250,
		240, 250, 260, 260, 260, 260, 250, 240,
	},
	mailbox.Bishop: {
		290, 290, 290, 290, 290, 290, 290, 290,
		290, 310, 310, 310, 310, 310, 310, 290,
		290, 310, 330, 330, 330, 330, 310, 290,
		290, 310, 330, 350, 350, 330, 310, 290,
		290, 310, 330, 350, 350, 330, 310, 290,
		290, 310, 330, 330, 330, 330, 310, 290,
		290, 310, 310, 310, 310, 310, 310, 290,
		290, 290, 290, 290, 290, 290, 290, 290,
	},
	mailbox.Queen: {
		900, 900, 900, 900, 900, 900, 900, 880,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
		900, 900, 900, 900, 900, 900, 900, 900,
	},
	mailbox.King: {
		0, 10, 20, 30, 30, 20, 10, 0,
		10, 20, 30, 40, 40, 30, 20, 10,
		20, 30, 40, 50, 50, 40, 30, 20,
		30, 40, 50, 60, 60, 50, 40, 30,
		30, 40, 50, 60, 60, 50, 40, 30,
		20, 30, 40, 50, 50, 40, 30, 20,
		10, 20, 30, 40, 40, 30, 20, 10,
		0, 10, 20, 30, 30, 20, 10, 0,
	},
}

// flipRank mirrors a square top to bottom (a8 <-> a1).
func flipRank(sq mailbox.Square) mailbox.Square { return sq ^ 56 }

// flipFile mirrors a square left to right (a1 <-> h1).
func flipFile(sq mailbox.Square) mailbox.Square { return sq ^ 7 }

// relativeSquare maps a square of side s to white's view of the tables.
func relativeSquare(sq mailbox.Square, s mailbox.Side) mailbox.Square {
	if s == mailbox.Black {
		return flipRank(sq)
	}
	return sq
}

func manhattan(a, b mailbox.Square) int32 {
	return int32(Abs(a.File()-b.File()) + Abs(a.Row()-b.Row()))
}

// Evaluate scores the position from the side to move's point of view.
// Each piece scores a blend of its midgame and endgame table value weighted
// by the number of pieces left. When material is unequal the kings are
// drawn together, more strongly as the board empties and the margin shrinks.
func Evaluate(b *mailbox.Board) int32 {
	us := b.SideToMove()
	eval := evaluateSide(b, us) - evaluateSide(b, us.Other())

	if eval != 0 {
		wk, bk := b.KingSquare(mailbox.White), b.KingSquare(mailbox.Black)
		if wk != mailbox.NoSquare && bk != mailbox.NoSquare {
			pc := int32(b.PieceCount())
			eval += (14 - manhattan(wk, bk)) * (fullBoardPieces - pc) / phaseSpan * 2000 / eval
		}
	}
	return eval
}

// evaluateSide sums the blended table values of side's pieces plus the
// castling bonus. Tables are read left-right mirrored when the king is on
// files a-d, so a queen-side king sees its own wing as the king side.
func evaluateSide(b *mailbox.Board, s mailbox.Side) int32 {
	pc := int32(b.PieceCount())
	mirror := false
	if k := b.KingSquare(s); k != mailbox.NoSquare && k.File() < 4 {
		mirror = true
	}

	var eval int32
	for t := mailbox.Pawn; t <= mailbox.King; t++ {
		b.ForEachSquare(mailbox.NewPiece(s, t), func(sq mailbox.Square) {
			adj := relativeSquare(sq, s)
			if mirror {
				adj = flipFile(adj)
			}
			eval += PSQT_MG[t][adj]*(pc-2)/phaseSpan + PSQT_EG[t][adj]*(fullBoardPieces-pc)/phaseSpan
		})
	}

	cr := b.CastlingRights()
	if s == mailbox.White {
		if cr&mailbox.CastleWhiteKing != 0 {
			eval += castlingBonus
		}
		if cr&mailbox.CastleWhiteQueen != 0 {
			eval += castlingBonus
		}
	} else {
		if cr&mailbox.CastleBlackKing != 0 {
			eval += castlingBonus
		}
		if cr&mailbox.CastleBlackQueen != 0 {
			eval += castlingBonus
		}
	}
	return eval
}
