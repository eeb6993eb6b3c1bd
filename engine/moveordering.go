package engine

import (
	"cmp"

	"golang.org/x/exp/slices"

	"mailbox-chess/mailbox"
)

type move struct {
	move  mailbox.Move
	score int32
}

// captureWeight scales the captured piece's table value in the ordering score.
const captureWeight = 10

// movePriority is the static ordering score of m: how much the mover's
// midgame table value improves, plus a weighted value for the victim and the
// value of any promotion piece.
func movePriority(m mailbox.Move) int32 {
	p := m.Piece()
	table := &PSQT_MG[p.Type()]
	from := relativeSquare(m.From(), p.Side())
	to := relativeSquare(m.To(), p.Side())

	score := table[to] - table[from]
	if c := m.Captured(); c != mailbox.NoPiece {
		score += captureWeight*PSQT_MG[c.Type()][relativeSquare(m.To(), c.Side())] - table[to]
	}
	if t := m.Promotion(); t != mailbox.NoType {
		score += PSQT_MG[t][to]
	}
	return score
}

// orderMoves sorts moves by descending priority in place. Equal priorities
// keep their generation order. scratch is reused to hold the scores and the
// possibly grown buffer is returned.
func orderMoves(moves []mailbox.Move, scratch []move) []move {
	scratch = scratch[:0]
	for _, m := range moves {
		scratch = append(scratch, move{move: m, score: movePriority(m)})
	}
	slices.SortStableFunc(scratch, func(a, b move) int {
		return cmp.Compare(b.score, a.score)
	})
	for i := range scratch {
		moves[i] = scratch[i].move
	}
	return scratch
}
