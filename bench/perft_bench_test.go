package bench

import (
	"testing"

	"mailbox-chess/engine"
	"mailbox-chess/mailbox"
)

func benchPerft(b *testing.B, fen string, depth int) {
	board, err := mailbox.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mailbox.Perft(board, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, mailbox.StartFEN, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipeteFEN, 3)
}

func benchSearch(b *testing.B, fen string, depth int) {
	board := mailbox.MustParseFEN(fen)
	searcher := engine.NewSearcher(engine.WithDepth(depth))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = searcher.Search(board)
	}
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, mailbox.StartFEN, 3)
}

func BenchmarkSearch_Kiwipete_D3(b *testing.B) {
	benchSearch(b, kiwipeteFEN, 3)
}

func BenchmarkEvaluate_Pos6(b *testing.B) {
	board := mailbox.MustParseFEN(pos6FEN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Evaluate(board)
	}
}
