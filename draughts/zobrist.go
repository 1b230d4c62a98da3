package draughts

import "math/rand"

// Zobrist keys for pieces, the forced-capture square and the side to move.
var zobristPiece [2][2][NumSquares + 1]uint64 // [color][kind][square]
var zobristForced [NumSquares + 1]uint64      // index 0 (no chain) stays zero
var zobristSide uint64                        // XORed in when white is to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so keys are stable across runs and tests.
	rnd := rand.New(rand.NewSource(0xD4A7))

	for c := 0; c < 2; c++ {
		for k := 0; k < 2; k++ {
			for sq := 1; sq <= NumSquares; sq++ {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for sq := 1; sq <= NumSquares; sq++ {
		zobristForced[sq] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the Zobrist key of the position from scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for c := Red; c <= White; c++ {
		for k := Checker; k <= King; k++ {
			for bb := b.pieces[c][k]; bb != EmptyBB; {
				sq, rest, _ := bb.PopLSB()
				key ^= zobristPiece[c][k][sq]
				bb = rest
			}
		}
	}
	if b.sideToMove == White {
		key ^= zobristSide
	}
	if b.forcedCapturePos <= NumSquares {
		key ^= zobristForced[b.forcedCapturePos]
	}
	return key
}
