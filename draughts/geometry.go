package draughts

import "strconv"

// Square identifies one of the 32 playable squares (1..32). Square 1 is on
// red's back rank, square 32 on white's.
type Square uint8

// NoSquare marks "no square" / off-board.
const NoSquare Square = 0

// NumSquares is the number of playable squares on the board.
const NumSquares = 32

// String returns the square number.
func (s Square) String() string { return strconv.Itoa(int(s)) }

// Direction is one of the four diagonals. North points toward white's side
// (increasing square numbers).
type Direction uint8

const (
	NorthWest Direction = iota
	NorthEast
	SouthWest
	SouthEast
)

// Directions lists the diagonals in generation order.
var Directions = [4]Direction{NorthWest, NorthEast, SouthWest, SouthEast}

func (d Direction) String() string {
	switch d {
	case NorthWest:
		return "nw"
	case NorthEast:
		return "ne"
	case SouthWest:
		return "sw"
	case SouthEast:
		return "se"
	default:
		return "?"
	}
}

// Rank and column step per direction. Columns grow toward the west in this
// orientation, which keeps the standard numbering (1 NE -> 5, 1 NW -> 6).
var dirDeltas = [4][2]int{
	NorthWest: {1, 1},
	NorthEast: {1, -1},
	SouthWest: {-1, 1},
	SouthEast: {-1, -1},
}

// diagonals[sq][dir] lists the squares reachable from sq, nearest first.
// Index 0 (NoSquare) stays empty in every direction.
var diagonals [NumSquares + 1][4][]Square

// rays[sq][dir] is the union of diagonals[sq][dir] as a bitboard.
var rays [NumSquares + 1][4]Bitboard

func init() {
	initDiagonals()
}

// initDiagonals walks every square outward along each diagonal until the edge.
func initDiagonals() {
	for sq := Square(1); sq <= NumSquares; sq++ {
		rank, col := Coords(sq)
		for d, delta := range dirDeltas {
			var ray []Square
			for r, c := rank+delta[0], col+delta[1]; r >= 0 && r < 8 && c >= 0 && c < 8; r, c = r+delta[0], c+delta[1] {
				t := SquareAt(r, c)
				ray = append(ray, t)
				rays[sq][d] |= SquareBB(t)
			}
			diagonals[sq][d] = ray
		}
	}
}

// Coords returns the rank (0 = red's back rank) and column of a square on the
// full 8x8 grid. It returns (-1, -1) for NoSquare and out-of-range values.
func Coords(sq Square) (rank, col int) {
	if sq == NoSquare || sq > NumSquares {
		return -1, -1
	}
	i := int(sq) - 1
	rank = i / 4
	col = 2 * (i % 4)
	if rank%2 == 0 {
		col++
	}
	return rank, col
}

// SquareAt is the inverse of Coords. Light squares and coordinates off the
// board map to NoSquare.
func SquareAt(rank, col int) Square {
	if rank < 0 || rank > 7 || col < 0 || col > 7 || (rank+col)%2 == 0 {
		return NoSquare
	}
	return Square(rank*4 + col/2 + 1)
}

// Neighbors returns the squares reachable from sq moving in direction d,
// nearest first, ending at the board edge. The slice is shared table memory
// and must not be modified.
func Neighbors(sq Square, d Direction) []Square {
	if sq > NumSquares || d > SouthEast {
		return nil
	}
	return diagonals[sq][d]
}

// Ray returns Neighbors(sq, d) as a bitboard.
func Ray(sq Square, d Direction) Bitboard {
	if sq > NumSquares || d > SouthEast {
		return EmptyBB
	}
	return rays[sq][d]
}
