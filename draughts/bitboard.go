package draughts

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares; bit n-1 stands for square n.
type Bitboard uint32

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB

	// Starting layout: red on 1..12, white on 21..32.
	RedStartBB   Bitboard = 0x00000FFF
	WhiteStartBB Bitboard = RedStartBB << 20

	// Back ranks. A red checker promotes on 29..32, a white one on 1..4.
	RedBackRankBB   Bitboard = 0x0000000F
	WhiteBackRankBB Bitboard = 0xF0000000
)

// promotionRank[c] is the set of squares on which a checker of color c is crowned.
var promotionRank = [2]Bitboard{
	Red:   WhiteBackRankBB,
	White: RedBackRankBB,
}

// SquareBB returns a bitboard with only sq set; NoSquare yields EmptyBB.
func SquareBB(sq Square) Bitboard {
	if sq == NoSquare || sq > NumSquares {
		return EmptyBB
	}
	return 1 << (sq - 1)
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Toggle returns b with sq flipped.
func (b Bitboard) Toggle(sq Square) Bitboard { return b ^ SquareBB(sq) }

// Occupied reports whether sq is in b.
func (b Bitboard) Occupied(sq Square) bool { return b&SquareBB(sq) != 0 }

// PopCount returns the number of squares in b.
func (b Bitboard) PopCount() int { return bits.OnesCount32(uint32(b)) }

// PopLSB returns the lowest square in b and b without it. ok is false when b is empty.
func (b Bitboard) PopLSB() (sq Square, rest Bitboard, ok bool) {
	if b == EmptyBB {
		return NoSquare, b, false
	}
	return Square(bits.TrailingZeros32(uint32(b)) + 1), b & (b - 1), true
}

// Squares lists the squares of b in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.PopCount())
	for bb := b; bb != EmptyBB; {
		sq, rest, _ := bb.PopLSB()
		out = append(out, sq)
		bb = rest
	}
	return out
}

// String renders b as 32 characters in square order, '1' for set squares.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.Grow(NumSquares)
	for sq := Square(1); sq <= NumSquares; sq++ {
		if b.Occupied(sq) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
