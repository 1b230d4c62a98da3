package draughts

import (
	"fmt"
	"strconv"
	"strings"
)

// StartSquares is the 32-character notation of the starting layout.
const StartSquares = "rrrrrrrrrrrr--------wwwwwwwwwwww"

// StartPosition is the position string of the starting position.
const StartPosition = StartSquares + " r"

// visualLen is the length of the 8x8 visual layout.
const visualLen = 64

// pieceFromChar converts a notation character to color and kind.
func pieceFromChar(ch byte) (Color, PieceKind, bool) {
	switch ch {
	case 'r':
		return Red, Checker, true
	case 'R':
		return Red, King, true
	case 'w':
		return White, Checker, true
	case 'W':
		return White, King, true
	default:
		return Red, Checker, false
	}
}

// charFromPiece converts color and kind to the notation character.
func charFromPiece(c Color, k PieceKind) byte {
	switch {
	case c == Red && k == Checker:
		return 'r'
	case c == Red:
		return 'R'
	case k == Checker:
		return 'w'
	default:
		return 'W'
	}
}

// charAt returns the notation character for sq, '-' when empty.
func (p Placement) charAt(sq Square) byte {
	for c := Red; c <= White; c++ {
		for k := Checker; k <= King; k++ {
			if p.Mask(c, k).Occupied(sq) {
				return charFromPiece(c, k)
			}
		}
	}
	return '-'
}

// NotationFromPlacement returns the 32-character board string, one character
// per square in order 1..32: r/R red checker/king, w/W white, - empty.
func NotationFromPlacement(p Placement) string {
	var sb strings.Builder
	sb.Grow(NumSquares)
	for sq := Square(1); sq <= NumSquares; sq++ {
		sb.WriteByte(p.charAt(sq))
	}
	return sb.String()
}

// PlacementFromNotation parses a 32-character board string.
func PlacementFromNotation(s string) (Placement, error) {
	var p Placement
	if len(s) != NumSquares {
		return p, fmt.Errorf("%w: want %d squares, got %d", ErrInvalidNotation, NumSquares, len(s))
	}
	for i := 0; i < NumSquares; i++ {
		ch := s[i]
		if ch == '-' {
			continue
		}
		c, k, ok := pieceFromChar(ch)
		if !ok {
			return Placement{}, fmt.Errorf("%w: unexpected %q on square %d", ErrInvalidNotation, ch, i+1)
		}
		p.put(c, k, Square(i+1))
	}
	return p, nil
}

// MustPlacement is PlacementFromNotation that panics on invalid input.
func MustPlacement(s string) Placement {
	p, err := PlacementFromNotation(s)
	if err != nil {
		panic(err)
	}
	return p
}

// visualIndex returns the offset of sq in the 64-character visual layout: row 0
// is white's back rank, and square 32 sits in the first dark cell.
func visualIndex(sq Square) int {
	rank, col := Coords(sq)
	return (7-rank)*8 + (7 - col)
}

// SquaresFromVisual converts the 64-character visual layout (8 rows of 8, dark
// cells holding r, R, w, W or # for empty, light cells blank) to the
// 32-character notation.
func SquaresFromVisual(v string) (string, error) {
	if len(v) != visualLen {
		return "", fmt.Errorf("%w: visual board wants %d cells, got %d", ErrInvalidNotation, visualLen, len(v))
	}
	var dark [visualLen]bool
	out := make([]byte, NumSquares)
	for sq := Square(1); sq <= NumSquares; sq++ {
		i := visualIndex(sq)
		dark[i] = true
		switch ch := v[i]; ch {
		case '#':
			out[sq-1] = '-'
		case 'r', 'R', 'w', 'W':
			out[sq-1] = ch
		default:
			return "", fmt.Errorf("%w: unexpected %q in cell %d (square %d)", ErrInvalidNotation, ch, i, sq)
		}
	}
	for i := 0; i < visualLen; i++ {
		if !dark[i] && v[i] != ' ' {
			return "", fmt.Errorf("%w: light cell %d must be blank, got %q", ErrInvalidNotation, i, v[i])
		}
	}
	return string(out), nil
}

// PlacementFromVisual parses the 64-character visual layout.
func PlacementFromVisual(v string) (Placement, error) {
	s, err := SquaresFromVisual(v)
	if err != nil {
		return Placement{}, err
	}
	return PlacementFromNotation(s)
}

// VisualFromPlacement renders the 64-character visual layout.
func VisualFromPlacement(p Placement) string {
	out := []byte(strings.Repeat(" ", visualLen))
	for sq := Square(1); sq <= NumSquares; sq++ {
		ch := p.charAt(sq)
		if ch == '-' {
			ch = '#'
		}
		out[visualIndex(sq)] = ch
	}
	return string(out)
}

// ParsePosition parses "<32 squares> <r|w> [forced square]", e.g.
// "rrrrrrrrrrrr--------wwwwwwwwwwww r". The side defaults to red when omitted.
func ParsePosition(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 3 {
		return nil, fmt.Errorf("%w: want 1 to 3 fields, got %d", ErrInvalidPosition, len(fields))
	}
	p, err := PlacementFromNotation(fields[0])
	if err != nil {
		return nil, err
	}
	side := Red
	if len(fields) > 1 {
		if err := side.UnmarshalText([]byte(fields[1])); err != nil {
			return nil, err
		}
	}
	forced := NoSquare
	if len(fields) > 2 {
		n, err := strconv.Atoi(fields[2])
		if err != nil || n < 0 || n > NumSquares {
			return nil, fmt.Errorf("%w: bad forced square %q", ErrInvalidPosition, fields[2])
		}
		forced = Square(n)
	}
	b := &Board{}
	b.Set(p, side, forced)
	return b, nil
}

// MustParsePosition is ParsePosition that panics on invalid input.
func MustParsePosition(s string) *Board {
	b, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the position string accepted by ParsePosition.
func (b *Board) String() string {
	s := NotationFromPlacement(b.Placement()) + " " + string(b.sideToMove.String()[0])
	if b.forcedCapturePos != NoSquare {
		s += " " + b.forcedCapturePos.String()
	}
	return s
}
