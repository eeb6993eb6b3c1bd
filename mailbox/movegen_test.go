package mailbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailbox-chess/mailbox"
)

func moveStrings(moves []mailbox.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestGeneratedMovesAreLegal(t *testing.T) {
	for _, fen := range []string{mailbox.StartFEN, kiwipeteFEN, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"} {
		b := mailbox.MustParseFEN(fen)
		us := b.SideToMove()
		for _, m := range b.LegalMoves() {
			b.MakeMove(m)
			assert.Falsef(t, b.InCheck(us), "%s leaves own king in check in %s", m, fen)
			b.UnmakeMove(m)
		}
	}
}

func TestCapturesOnly(t *testing.T) {
	b := mailbox.MustParseFEN(kiwipeteFEN)
	caps := b.LegalCaptures()
	require.Len(t, caps, 8)
	for _, m := range caps {
		assert.Truef(t, m.IsCapture(), "%s is not a capture", m)
	}

	all := b.LegalMoves()
	n := 0
	for _, m := range all {
		if m.IsCapture() {
			n++
			assert.True(t, mailbox.ContainsMove(caps, m))
		}
	}
	assert.Equal(t, n, len(caps))
}

func TestCapturesOnlyIncludesEnPassantAndCapturePromotions(t *testing.T) {
	b := mailbox.MustParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	assert.ElementsMatch(t, []string{"e5d6"}, moveStrings(b.LegalCaptures()))

	b = mailbox.MustParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	assert.ElementsMatch(t, []string{"a7b8q", "a7b8r", "a7b8b", "a7b8n"}, moveStrings(b.LegalCaptures()))
}

func TestGenerationOrder(t *testing.T) {
	b := mailbox.MustParseFEN("4k3/8/8/8/8/8/4P3/QRBNK3 w - - 0 1")
	moves := b.GenerateMovesInto(nil, false)
	require.NotEmpty(t, moves)

	rank := map[mailbox.PieceType]int{
		mailbox.Queen: 0, mailbox.Rook: 1, mailbox.Bishop: 2,
		mailbox.Knight: 3, mailbox.Pawn: 4, mailbox.King: 5,
	}
	last := 0
	for _, m := range moves {
		r := rank[m.Piece().Type()]
		require.GreaterOrEqualf(t, r, last, "%s generated out of order", m)
		last = r
	}
}

func TestLegalMovesFrom(t *testing.T) {
	b := mailbox.NewBoard()
	assert.ElementsMatch(t, []string{"g1f3", "g1h3"}, moveStrings(b.LegalMovesFrom(sq(t, "g1"))))
	assert.ElementsMatch(t, []string{"e2e3", "e2e4"}, moveStrings(b.LegalMovesFrom(sq(t, "e2"))))
	assert.Empty(t, b.LegalMovesFrom(sq(t, "e7")), "black piece with white to move")
	assert.Empty(t, b.LegalMovesFrom(sq(t, "e4")), "empty square")
	assert.Empty(t, b.LegalMovesFrom(sq(t, "a1")))
}

func TestPinnedPieceCannotMove(t *testing.T) {
	b := mailbox.MustParseFEN("4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	assert.Empty(t, b.LegalMovesFrom(sq(t, "e2")))
}

func TestCastlingRestrictions(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want []string
	}{
		{"both sides free", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", nil},
		{"f1 attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", []string{"e1c1"}},
		{"b1 attacked is fine", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}},
		{"b1 occupied", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", []string{"e1g1"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", nil},
		{"rook missing", "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1", []string{"e1g1"}},
		{"black", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8g8", "e8c8"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mailbox.MustParseFEN(tc.fen)
			var got []string
			for _, m := range b.LegalMoves() {
				if m.IsCastle() {
					got = append(got, m.String())
				}
			}
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestIsAttacked(t *testing.T) {
	b := mailbox.MustParseFEN("4k3/8/8/3p4/8/2N5/8/R3K2B w - - 0 1")
	cases := []struct {
		square string
		by     mailbox.Side
		want   bool
	}{
		{"a8", mailbox.White, true},  // rook up the a-file
		{"d1", mailbox.White, true},  // rook along the first rank, king too
		{"f1", mailbox.White, true},  // king
		{"g1", mailbox.White, false}, // rook blocked by the king
		{"g2", mailbox.White, true},  // bishop diagonal
		{"d5", mailbox.White, true},  // knight c3 and bishop h1
		{"b5", mailbox.White, true},  // knight
		{"c4", mailbox.Black, true},  // black pawn d5
		{"e4", mailbox.Black, true},  // black pawn d5
		{"d4", mailbox.Black, false}, // pawns do not attack straight ahead
		{"h8", mailbox.White, false},
		{"d7", mailbox.Black, true}, // king
		{"e6", mailbox.Black, false},
	}
	for _, tc := range cases {
		got := b.IsAttacked(sq(t, tc.square), tc.by)
		assert.Equalf(t, tc.want, got, "%s attacked by %s", tc.square, tc.by)
	}
}

func TestInCheckWithoutKing(t *testing.T) {
	b := mailbox.MustParseFEN("8/8/8/8/8/8/8/R6K b - - 0 1")
	assert.False(t, b.HasKing(mailbox.Black))
	assert.False(t, b.InCheck(mailbox.Black))
	assert.Equal(t, mailbox.NoSquare, b.KingSquare(mailbox.Black))
}
