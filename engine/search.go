package engine

import (
	"io"
	"math"
	"time"

	"mailbox-chess/mailbox"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MinScore is the lost-game score. It is one above math.MinInt32 so that
	// it can be negated.
	MinScore  int32 = math.MinInt32 + 1
	MaxScore  int32 = math.MaxInt32
	DrawScore int32 = 0

	// Scores this close to MinScore or MaxScore are mates.
	mateWindow int32 = 1000
)

// DefaultDepth is the number of plies searched at full width before
// quiescence takes over. The root move counts as the first ply.
const DefaultDepth = 6

// Searcher runs fixed-depth searches. A Searcher keeps per-ply move buffers
// between searches and must not be shared between goroutines; give each
// goroutine its own Searcher and Board.
type Searcher struct {
	depth int
	info  io.Writer

	nodes uint64

	moveBufs  [][]mailbox.Move
	scoreBufs [][]move
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepth sets the full-width search depth in plies. Values below 1 are
// treated as 1.
func WithDepth(depth int) Option {
	return func(s *Searcher) { s.depth = Max(depth, 1) }
}

// WithInfo makes the searcher write one UCI-style info line per search to w.
func WithInfo(w io.Writer) Option {
	return func(s *Searcher) { s.info = w }
}

// NewSearcher returns a Searcher with depth DefaultDepth and no info output,
// adjusted by opts.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{depth: DefaultDepth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the configured full-width depth.
func (s *Searcher) Depth() int { return s.depth }

// Result is the outcome of a root search.
type Result struct {
	Move    mailbox.Move
	Score   int32
	Nodes   uint64
	Elapsed time.Duration
}

// BestMove searches b with the default settings.
func BestMove(b *mailbox.Board) mailbox.Move {
	return NewSearcher().BestMove(b)
}

// BestMove returns the move the search prefers, or mailbox.NullMove when the
// side to move has no legal move.
func (s *Searcher) BestMove(b *mailbox.Board) mailbox.Move {
	return s.Search(b).Move
}

// Search scores every legal root move and returns the best one with its
// score from the side to move's point of view. Ties go to the move ordered
// first. The board is restored before Search returns.
func (s *Searcher) Search(b *mailbox.Board) Result {
	start := time.Now()
	s.nodes = 0

	moves := b.LegalMoves()
	if len(moves) == 0 {
		score := DrawScore
		if b.InCheck(b.SideToMove()) {
			score = MinScore
		}
		return Result{Move: mailbox.NullMove, Score: score, Elapsed: time.Since(start)}
	}
	s.scoreBufs = growBuffers(s.scoreBufs, 0)
	s.scoreBufs[0] = orderMoves(moves, s.scoreBufs[0])

	bestMove := moves[0]
	bestValue := MinScore
	for _, m := range moves {
		b.MakeMove(m)
		value := -s.negamax(b, MinScore, -bestValue, 1)
		b.UnmakeMove(m)
		if value > bestValue {
			bestValue = value
			bestMove = m
		}
	}

	res := Result{Move: bestMove, Score: bestValue, Nodes: s.nodes, Elapsed: time.Since(start)}
	if s.info != nil {
		writeInfo(s.info, s.depth, res)
	}
	return res
}

// generate fills the buffer for ply with ordered semilegal moves.
func (s *Searcher) generate(b *mailbox.Board, ply int, capturesOnly bool) []mailbox.Move {
	s.moveBufs = growBuffers(s.moveBufs, ply)
	s.scoreBufs = growBuffers(s.scoreBufs, ply)
	moves := b.GenerateMovesInto(s.moveBufs[ply][:0], capturesOnly)
	s.moveBufs[ply] = moves
	s.scoreBufs[ply] = orderMoves(moves, s.scoreBufs[ply])
	return moves
}

func growBuffers[T any](bufs [][]T, ply int) [][]T {
	for len(bufs) <= ply {
		bufs = append(bufs, make([]T, 0, 64))
	}
	return bufs
}

// isDraw reports the draws the search recognises: the fifty-move rule, any
// repetition of an earlier position and bare kings.
func isDraw(b *mailbox.Board) bool {
	return b.IsDrawBy50() || b.IsRepetition() || b.IsBareKings()
}

func (s *Searcher) negamax(b *mailbox.Board, alpha, beta int32, ply int) int32 {
	s.nodes++
	us := b.SideToMove()

	if !b.HasKing(us) {
		return MinScore + int32(ply)
	}
	if isDraw(b) {
		return DrawScore
	}
	if ply >= s.depth {
		return s.quiesce(b, alpha, beta, ply)
	}

	tried := 0
	value := MinScore
	for _, m := range s.generate(b, ply, false) {
		b.MakeMove(m)
		if !b.InCheck(us) {
			value = Max(value, -s.negamax(b, -beta, -alpha, ply+1))
			tried++
		}
		b.UnmakeMove(m)
		alpha = Max(alpha, value)
		if alpha >= beta {
			break
		}
	}

	if tried == 0 {
		if b.InCheck(us) {
			return MinScore + int32(ply)
		}
		return DrawScore
	}
	return value
}

// quiesce searches captures until the position is quiet. It is fail-hard:
// the result always lies within [alpha, beta].
func (s *Searcher) quiesce(b *mailbox.Board, alpha, beta int32, ply int) int32 {
	s.nodes++
	us := b.SideToMove()

	if !b.HasKing(us) {
		return Clamp(MinScore+int32(ply), alpha, beta)
	}
	if b.IsBareKings() {
		return Clamp(DrawScore, alpha, beta)
	}

	standPat := Evaluate(b)
	if standPat >= beta {
		return beta
	}
	alpha = Max(alpha, standPat)

	for _, m := range s.generate(b, ply, true) {
		b.MakeMove(m)
		if b.InCheck(us) {
			b.UnmakeMove(m)
			continue
		}
		value := -s.quiesce(b, -beta, -alpha, ply+1)
		b.UnmakeMove(m)

		if value >= beta {
			return beta
		}
		alpha = Max(alpha, value)
	}
	return alpha
}
