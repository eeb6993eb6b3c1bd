package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailbox-chess/mailbox"
)

func TestOrderMovesCaptureFirst(t *testing.T) {
	b := mailbox.MustParseFEN("4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	moves := b.GenerateMoves()
	orderMoves(moves, nil)
	assert.Equal(t, "d2d5", moves[0].String())
}

func TestOrderMovesIsStableAndDescending(t *testing.T) {
	b := mailbox.MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	moves := b.GenerateMoves()
	index := make(map[string]int, len(moves))
	for i, m := range moves {
		index[m.String()] = i
	}
	require.Len(t, index, len(moves))

	scratch := orderMoves(moves, make([]move, 0, 4))
	require.Len(t, scratch, len(moves))

	for i := 1; i < len(moves); i++ {
		prev, cur := movePriority(moves[i-1]), movePriority(moves[i])
		require.GreaterOrEqual(t, prev, cur)
		if prev == cur {
			assert.Less(t, index[moves[i-1].String()], index[moves[i].String()])
		}
	}
}

func TestMovePriority(t *testing.T) {
	b := mailbox.NewBoard()
	// Knight b1 (250) to c3 (300).
	assert.Equal(t, int32(50), movePriority(b.ParseMove("b1c3")))

	b = mailbox.MustParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	promo := b.ParseMove("a7a8q")
	// Pawn a7 (200) to a8 (0) plus a queen on a8 (890).
	assert.Equal(t, int32(690), movePriority(promo))
}
