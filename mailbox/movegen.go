package mailbox

// Generation order of the non-pawn, non-king pieces.
var sliderOrder = [...]struct {
	t    PieceType
	dirs int
}{
	{Queen, allDirs},
	{Rook, orthogonalDirs},
	{Bishop, diagonalDirs},
}

var promotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

func isPromotionSquare(sq Square) bool { return sq < 8 || sq > 55 }

func pawnStartRow(s Side) int {
	if s == White {
		return 6
	}
	return 1
}

// GenerateMoves returns the semilegal moves of the side to move.
func (b *Board) GenerateMoves() []Move { return b.GenerateMovesInto(make([]Move, 0, 64), false) }

// GenerateMovesInto appends the semilegal moves of the side to move to dst and
// returns the extended slice. Pieces are visited queens first, then rooks,
// bishops, knights, pawns, the king and finally castling. With capturesOnly
// set only moves that take a piece (en passant included) are produced.
func (b *Board) GenerateMovesInto(dst []Move, capturesOnly bool) []Move {
	us := b.sideToMove
	for _, s := range sliderOrder {
		for _, sq := range b.pieceSquares[NewPiece(us, s.t)] {
			dst = b.genSlider(dst, sq, s.dirs, 7, capturesOnly)
		}
	}
	for _, sq := range b.pieceSquares[NewPiece(us, Knight)] {
		dst = b.genKnight(dst, sq, capturesOnly)
	}
	for _, sq := range b.pieceSquares[NewPiece(us, Pawn)] {
		dst = b.genPawn(dst, sq, capturesOnly)
	}
	for _, sq := range b.pieceSquares[NewPiece(us, King)] {
		dst = b.genSlider(dst, sq, allDirs, 1, capturesOnly)
	}
	if !capturesOnly {
		dst = b.genCastling(dst)
	}
	return dst
}

// GenerateMovesFromInto is GenerateMovesInto restricted to the piece on sq.
// Nothing is appended when sq does not hold a piece of the side to move.
func (b *Board) GenerateMovesFromInto(dst []Move, sq Square, capturesOnly bool) []Move {
	p := b.PieceOn(sq)
	if p == NoPiece || p.Side() != b.sideToMove {
		return dst
	}
	switch p.Type() {
	case Queen:
		return b.genSlider(dst, sq, allDirs, 7, capturesOnly)
	case Rook:
		return b.genSlider(dst, sq, orthogonalDirs, 7, capturesOnly)
	case Bishop:
		return b.genSlider(dst, sq, diagonalDirs, 7, capturesOnly)
	case Knight:
		return b.genKnight(dst, sq, capturesOnly)
	case Pawn:
		return b.genPawn(dst, sq, capturesOnly)
	case King:
		dst = b.genSlider(dst, sq, allDirs, 1, capturesOnly)
		if !capturesOnly {
			dst = b.genCastling(dst)
		}
	}
	return dst
}

// genSlider walks every direction in mask for at most maxSteps squares.
func (b *Board) genSlider(dst []Move, from Square, mask int, maxSteps int, capturesOnly bool) []Move {
	us := b.sideToMove
	for d := 0; d < 8; d++ {
		if mask&(1<<d) == 0 {
			continue
		}
		steps := min(distanceToEdge[from][d], maxSteps)
		for n := 1; n <= steps; n++ {
			to := from + Square(n*directions[d])
			target := b.squares[to]
			if target == NoPiece {
				if !capturesOnly {
					dst = append(dst, NewMove(b, from, to))
				}
				continue
			}
			if target.Side() != us {
				dst = append(dst, NewMove(b, from, to))
			}
			break
		}
	}
	return dst
}

func (b *Board) genKnight(dst []Move, from Square, capturesOnly bool) []Move {
	us := b.sideToMove
	for _, to := range knightHops[from] {
		target := b.squares[to]
		if target == NoPiece {
			if !capturesOnly {
				dst = append(dst, NewMove(b, from, to))
			}
		} else if target.Side() != us {
			dst = append(dst, NewMove(b, from, to))
		}
	}
	return dst
}

// appendPawnMove adds m, expanded into the four promotion choices when the
// pawn reaches the last rank.
func appendPawnMove(dst []Move, m Move) []Move {
	if !isPromotionSquare(m.to) {
		return append(dst, m)
	}
	for _, t := range promotionTypes {
		dst = append(dst, m.WithPromotion(t))
	}
	return dst
}

func (b *Board) genPawn(dst []Move, from Square, capturesOnly bool) []Move {
	us := b.sideToMove
	fwd := forward(us)

	if !capturesOnly {
		one := from + fwd
		if one.Valid() && b.squares[one] == NoPiece {
			dst = appendPawnMove(dst, NewMove(b, from, one))
			two := one + fwd
			if from.Row() == pawnStartRow(us) && b.squares[two] == NoPiece {
				dst = append(dst, NewMove(b, from, two))
			}
		}
	}

	// Diagonal targets: towards the a-file, then towards the h-file.
	file := from.File()
	for _, side := range [2]int{-1, 1} {
		if (side < 0 && file == 0) || (side > 0 && file == 7) {
			continue
		}
		to := from + fwd + Square(side)
		if !to.Valid() {
			continue
		}
		target := b.squares[to]
		if (target != NoPiece && target.Side() != us) || (target == NoPiece && to == b.enPassant) {
			dst = appendPawnMove(dst, NewMove(b, from, to))
		}
	}
	return dst
}

type castleRule struct {
	right      CastlingRights
	king       Square
	kingTo     Square
	rook       Piece
	rookSq     Square
	empty      []Square
	unattacked []Square
}

var castleRules = [...]castleRule{
	{CastleWhiteKing, whiteKingHome, 62, WhiteRook, 63, []Square{61, 62}, []Square{61, 62}},
	{CastleWhiteQueen, whiteKingHome, 58, WhiteRook, 56, []Square{57, 58, 59}, []Square{58, 59}},
	{CastleBlackKing, blackKingHome, 6, BlackRook, 7, []Square{5, 6}, []Square{5, 6}},
	{CastleBlackQueen, blackKingHome, 2, BlackRook, 0, []Square{1, 2, 3}, []Square{2, 3}},
}

func (b *Board) genCastling(dst []Move) []Move {
	us := b.sideToMove
	if b.castling&sideRights(us) == 0 || b.InCheck(us) {
		return dst
	}
	them := us.Other()
	king := NewPiece(us, King)
rules:
	for _, r := range castleRules {
		if b.castling&r.right == 0 || b.squares[r.king] != king || b.squares[r.rookSq] != r.rook {
			continue
		}
		for _, sq := range r.empty {
			if b.squares[sq] != NoPiece {
				continue rules
			}
		}
		for _, sq := range r.unattacked {
			if b.IsAttacked(sq, them) {
				continue rules
			}
		}
		dst = append(dst, NewMove(b, r.king, r.kingTo))
	}
	return dst
}

// IsAttacked reports whether any piece of side by attacks sq.
func (b *Board) IsAttacked(sq Square, by Side) bool {
	knight := NewPiece(by, Knight)
	for _, from := range knightHops[sq] {
		if b.squares[from] == knight {
			return true
		}
	}

	pawn := NewPiece(by, Pawn)
	file := sq.File()
	// A pawn of side by attacking sq sits one row behind it from by's point of view.
	behind := sq - forward(by)
	if file > 0 {
		if from := behind - 1; from.Valid() && b.squares[from] == pawn {
			return true
		}
	}
	if file < 7 {
		if from := behind + 1; from.Valid() && b.squares[from] == pawn {
			return true
		}
	}

	for d := 0; d < 8; d++ {
		for n := 1; n <= distanceToEdge[sq][d]; n++ {
			p := b.squares[sq+Square(n*directions[d])]
			if p == NoPiece {
				continue
			}
			if p.Side() == by {
				switch p.Type() {
				case Queen:
					return true
				case Rook:
					if d%2 == 0 {
						return true
					}
				case Bishop:
					if d%2 == 1 {
						return true
					}
				case King:
					if n == 1 {
						return true
					}
				}
			}
			break
		}
	}
	return false
}

// InCheck reports whether side's king is attacked. A side without a king is
// never in check.
func (b *Board) InCheck(s Side) bool {
	k := b.KingSquare(s)
	if k == NoSquare {
		return false
	}
	return b.IsAttacked(k, s.Other())
}

// RemoveIllegalMoves filters moves in place, keeping those that do not leave
// the mover's king attacked, and returns the shortened slice.
func (b *Board) RemoveIllegalMoves(moves []Move) []Move {
	us := b.sideToMove
	legal := moves[:0]
	for _, m := range moves {
		b.MakeMove(m)
		if !b.InCheck(us) {
			legal = append(legal, m)
		}
		b.UnmakeMove(m)
	}
	return legal
}

// LegalMoves returns all legal moves of the side to move.
func (b *Board) LegalMoves() []Move {
	return b.RemoveIllegalMoves(b.GenerateMovesInto(make([]Move, 0, 64), false))
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func (b *Board) LegalMovesFrom(sq Square) []Move {
	return b.RemoveIllegalMoves(b.GenerateMovesFromInto(make([]Move, 0, 32), sq, false))
}

// LegalCaptures returns the legal capturing moves of the side to move.
func (b *Board) LegalCaptures() []Move {
	return b.RemoveIllegalMoves(b.GenerateMovesInto(make([]Move, 0, 32), true))
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	us := b.sideToMove
	for _, m := range b.GenerateMovesInto(make([]Move, 0, 64), false) {
		b.MakeMove(m)
		ok := !b.InCheck(us)
		b.UnmakeMove(m)
		if ok {
			return true
		}
	}
	return false
}

// Perft counts leaf nodes of the legal move tree to the given depth.
// Per-depth buffers are reused to avoid allocations.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	if depth == 0 {
		return 1
	}
	us := b.sideToMove
	var nodes uint64
	moves := b.GenerateMovesInto(pc.bufFor(depth), false)
	pc.bufs[depth] = moves
	for _, m := range moves {
		b.MakeMove(m)
		if !b.InCheck(us) {
			nodes += perftRec(b, depth-1, pc)
		}
		b.UnmakeMove(m)
	}
	return nodes
}

// PerftDivide returns the leaf count below each legal root move, keyed by the
// move's coordinate string.
func PerftDivide(b *Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.LegalMoves() {
		b.MakeMove(m)
		result[m.String()] = Perft(b, depth-1)
		b.UnmakeMove(m)
	}
	return result
}
