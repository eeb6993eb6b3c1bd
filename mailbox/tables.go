package mailbox

import (
	"math/rand"
	"sync"
)

// Ray directions as square offsets, in a fixed order. Even indices are
// orthogonal, odd indices diagonal.
//
//	0 right, 1 up-right, 2 up, 3 up-left, 4 left, 5 down-left, 6 down, 7 down-right
var directions = [8]int{1, -7, -8, -9, -1, 7, 8, 9}

// Direction masks used by the sliding generators.
const (
	orthogonalDirs = 0b01010101
	diagonalDirs   = 0b10101010
	allDirs        = 0b11111111
)

// distanceToEdge[sq][dir] is the number of steps a slider on sq can take in dir.
var distanceToEdge [64][8]int

// knightHops[sq] lists knight destinations from sq.
var knightHops [64][]Square

// Zobrist hashing keys.
var zobristPiece [pieceCodes][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristBlackToMove uint64

var tablesOnce sync.Once

// InitTables computes the process-wide lookup tables. It runs once; every board
// constructor calls it, so explicit calls are only needed before using the
// tables without a board.
func InitTables() {
	tablesOnce.Do(func() {
		initDistanceToEdge()
		initKnightHops()
		initZobrist()
	})
}

func initDistanceToEdge() {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			right := 7 - file
			up := rank
			left := file
			down := 7 - rank
			distanceToEdge[file+rank*8] = [8]int{
				right,
				min(right, up),
				up,
				min(left, up),
				left,
				min(left, down),
				down,
				min(right, down),
			}
		}
	}
}

func initKnightHops() {
	offsets := [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		hops := make([]Square, 0, 8)
		for _, off := range offsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				hops = append(hops, Square(r*8+f))
			}
		}
		knightHops[sq] = hops
	}
}

func initZobrist() {
	// Fixed seed: the same position hashes identically in every process.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < pieceCodes; p++ {
		if Piece(p).Type() == NoType || Piece(p).Type() == AnyType {
			continue
		}
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristBlackToMove = rnd.Uint64()
}
