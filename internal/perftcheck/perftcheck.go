// Package perftcheck compares mailbox perft counts against independent move
// generators.
package perftcheck

import (
	"fmt"
	"sort"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"

	"mailbox-chess/mailbox"
)

// Reference names a third-party move generator.
type Reference string

const (
	Dragontooth Reference = "dragontooth"
	Goose       Reference = "goose"
)

// References lists every generator Compare understands.
var References = []Reference{Dragontooth, Goose}

// Mismatch is a root move whose subtree count differs from the reference.
// A zero Got or Want means the move is missing on that side.
type Mismatch struct {
	Move string
	Got  uint64
	Want uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d, want %d", m.Move, m.Got, m.Want)
}

// Divide runs the reference's divide on fen and keys the result by UCI move.
func Divide(ref Reference, fen string, depth int) (map[string]uint64, error) {
	// The references are less forgiving with malformed input.
	if _, err := mailbox.ParseFEN(fen); err != nil {
		return nil, err
	}
	switch ref {
	case Dragontooth:
		return dragontoothDivide(fen, depth), nil
	case Goose:
		return gooseDivide(fen, depth)
	}
	return nil, fmt.Errorf("unknown reference %q", ref)
}

// Compare diffs mailbox.PerftDivide against the reference. Mismatches are
// sorted by move.
func Compare(ref Reference, fen string, depth int) ([]Mismatch, error) {
	want, err := Divide(ref, fen, depth)
	if err != nil {
		return nil, err
	}
	b, err := mailbox.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	got := mailbox.PerftDivide(b, depth)

	var out []Mismatch
	for mv, n := range got {
		if want[mv] != n {
			out = append(out, Mismatch{Move: mv, Got: n, Want: want[mv]})
		}
	}
	for mv, n := range want {
		if _, ok := got[mv]; !ok {
			out = append(out, Mismatch{Move: mv, Want: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Move < out[j].Move })
	return out, nil
}

func gooseDivide(fen string, depth int) (map[string]uint64, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(b, depth) {
		out[m.String()] = n
	}
	return out, nil
}

func dragontoothDivide(fen string, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		out[m.String()] = dragontoothPerft(&b, depth-1)
		undo()
	}
	return out
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}
