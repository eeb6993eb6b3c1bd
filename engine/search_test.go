package engine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailbox-chess/engine"
	"mailbox-chess/mailbox"
)

func TestSearcherOptions(t *testing.T) {
	assert.Equal(t, engine.DefaultDepth, engine.NewSearcher().Depth())
	assert.Equal(t, 3, engine.NewSearcher(engine.WithDepth(3)).Depth())
	assert.Equal(t, 1, engine.NewSearcher(engine.WithDepth(0)).Depth())
}

func TestDepthCountsRootMove(t *testing.T) {
	assert.Equal(t, 6, engine.DefaultDepth)

	// Seeing the mate needs the root move plus the mated side's reply.
	b := mailbox.MustParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	shallow := engine.NewSearcher(engine.WithDepth(1)).Search(b)
	assert.Less(t, shallow.Score, engine.MaxScore-1)

	deep := engine.NewSearcher(engine.WithDepth(2)).Search(b)
	assert.Equal(t, engine.MaxScore-1, deep.Score)
	assert.Equal(t, "a1a8", deep.Move.String())
}

func TestFindsMateInOne(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"white back rank", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8"},
		{"black back rank", "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1", "a8a1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mailbox.MustParseFEN(tt.fen)
			res := engine.NewSearcher(engine.WithDepth(3)).Search(b)
			assert.Equal(t, tt.want, res.Move.String())
			assert.Equal(t, engine.MaxScore-1, res.Score)
			assert.Equal(t, "mate 1", engine.FormatScore(res.Score))
		})
	}
}

func TestBestMoveDefaultDepth(t *testing.T) {
	if testing.Short() {
		t.Skip("full-depth search")
	}
	b := mailbox.MustParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.Equal(t, "a1a8", engine.BestMove(b).String())
}

func TestWinsHangingQueen(t *testing.T) {
	b := mailbox.MustParseFEN("4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	res := engine.NewSearcher(engine.WithDepth(2)).Search(b)
	assert.Equal(t, "d2d5", res.Move.String())
	assert.Positive(t, res.Score)
	assert.NotZero(t, res.Nodes)
}

func TestNoLegalMoves(t *testing.T) {
	t.Run("checkmated", func(t *testing.T) {
		b := mailbox.MustParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
		res := engine.NewSearcher(engine.WithDepth(2)).Search(b)
		assert.True(t, res.Move.IsNull())
		assert.Equal(t, engine.MinScore, res.Score)
	})
	t.Run("stalemated", func(t *testing.T) {
		b := mailbox.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
		res := engine.NewSearcher(engine.WithDepth(2)).Search(b)
		assert.True(t, res.Move.IsNull())
		assert.Equal(t, engine.DrawScore, res.Score)
	})
}

func TestDrawScores(t *testing.T) {
	t.Run("bare kings", func(t *testing.T) {
		b := mailbox.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		res := engine.NewSearcher(engine.WithDepth(2)).Search(b)
		assert.False(t, res.Move.IsNull())
		assert.Equal(t, engine.DrawScore, res.Score)
	})
	t.Run("fifty move rule", func(t *testing.T) {
		s := engine.NewSearcher(engine.WithDepth(2))
		fresh := s.Search(mailbox.MustParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 80"))
		assert.Positive(t, fresh.Score)

		stale := s.Search(mailbox.MustParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 99 80"))
		assert.Equal(t, engine.DrawScore, stale.Score)
	})
}

func TestSearchRestoresBoard(t *testing.T) {
	fens := []string{
		mailbox.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	}
	for _, fen := range fens {
		b := mailbox.MustParseFEN(fen)
		hash, history := b.Hash(), b.HistoryLen()

		res := engine.NewSearcher(engine.WithDepth(2)).Search(b)
		require.False(t, res.Move.IsNull(), fen)

		assert.Equal(t, fen, b.FEN())
		assert.Equal(t, hash, b.Hash())
		assert.Equal(t, history, b.HistoryLen())
		assert.True(t, mailbox.ContainsMove(b.LegalMoves(), res.Move), fen)
	}
}

func TestInfoOutput(t *testing.T) {
	var buf bytes.Buffer
	b := mailbox.NewBoard()
	res := engine.NewSearcher(engine.WithDepth(1), engine.WithInfo(&buf)).Search(b)

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "info depth 1 score cp "), line)
	assert.Contains(t, line, " nodes ")
	assert.Contains(t, line, " nps ")
	assert.True(t, strings.HasSuffix(line, "pv "+res.Move.String()), line)
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int32
		want  string
	}{
		{0, "cp 0"},
		{35, "cp 35"},
		{-120, "cp -120"},
		{engine.MaxScore - 1, "mate 1"},
		{engine.MaxScore - 3, "mate 2"},
		{engine.MinScore + 2, "mate -1"},
		{engine.MinScore + 4, "mate -2"},
		{engine.MinScore, "mate 0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.FormatScore(tt.score), "score %d", tt.score)
	}
}
