package perftcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailbox-chess/mailbox"
)

var positions = []struct {
	name  string
	fen   string
	depth int
}{
	{"initial", mailbox.StartFEN, 3},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2},
}

func TestCompareAgainstReferences(t *testing.T) {
	for _, ref := range References {
		for _, p := range positions {
			t.Run(string(ref)+"/"+p.name, func(t *testing.T) {
				mismatches, err := Compare(ref, p.fen, p.depth)
				require.NoError(t, err)
				assert.Empty(t, mismatches)
			})
		}
	}
}

func TestDivideTotals(t *testing.T) {
	for _, ref := range References {
		div, err := Divide(ref, mailbox.StartFEN, 2)
		require.NoError(t, err)
		assert.Len(t, div, 20)

		var total uint64
		for _, n := range div {
			total += n
		}
		assert.Equal(t, uint64(400), total, ref)
	}
}

func TestCompareErrors(t *testing.T) {
	_, err := Compare("stockfish", mailbox.StartFEN, 1)
	assert.Error(t, err)

	_, err = Compare(Dragontooth, "not a fen", 1)
	assert.ErrorIs(t, err, mailbox.ErrInvalidFEN)
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{Move: "e2e4", Got: 20, Want: 21}
	assert.Equal(t, "e2e4: got 20, want 21", m.String())
}
