// Package draughts implements the rules of Buff and Green draughts on 32-bit
// bitboards: position state, legal action generation, action application,
// text notation and perft.
package draughts

import (
	"fmt"
	"strings"
)

// Color is a side. Red starts on squares 1..12 and moves first.
type Color uint8

const (
	Red   Color = 0
	White Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "red"
}

// MarshalText encodes the color as "red" or "white".
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts "red"/"r" and "white"/"w".
func (c *Color) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "red", "r":
		*c = Red
	case "white", "w":
		*c = White
	default:
		return fmt.Errorf("%w: unknown color %q", ErrInvalidPosition, text)
	}
	return nil
}

// PieceKind distinguishes men from kings.
type PieceKind uint8

const (
	Checker PieceKind = 0
	King    PieceKind = 1
)

func (k PieceKind) String() string {
	if k == King {
		return "king"
	}
	return "checker"
}

// MarshalText encodes the kind as "checker" or "king".
func (k PieceKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Placement is the piece layout as four explicit masks.
type Placement struct {
	RedCheckers   Bitboard
	RedKings      Bitboard
	WhiteCheckers Bitboard
	WhiteKings    Bitboard
}

// Mask returns the mask for one color/kind combination.
func (p Placement) Mask(c Color, k PieceKind) Bitboard {
	switch {
	case c == Red && k == Checker:
		return p.RedCheckers
	case c == Red:
		return p.RedKings
	case k == Checker:
		return p.WhiteCheckers
	default:
		return p.WhiteKings
	}
}

// Occupancy returns all occupied squares.
func (p Placement) Occupancy() Bitboard {
	return p.RedCheckers | p.RedKings | p.WhiteCheckers | p.WhiteKings
}

func (p *Placement) put(c Color, k PieceKind, sq Square) {
	switch {
	case c == Red && k == Checker:
		p.RedCheckers = p.RedCheckers.Set(sq)
	case c == Red:
		p.RedKings = p.RedKings.Set(sq)
	case k == Checker:
		p.WhiteCheckers = p.WhiteCheckers.Set(sq)
	default:
		p.WhiteKings = p.WhiteKings.Set(sq)
	}
}

// Rules holds variant switches that change how capture chains behave.
type Rules struct {
	// LegacyKingChains ends a king's turn after a single capture and yields no
	// actions for a forced continuation from a king square. When false, a king
	// keeps capturing with the flying scan while captures remain.
	LegacyKingChains bool
}

// Board is the position: four piece masks, the side to move and the square a
// piece must keep capturing from (NoSquare when no chain is in progress).
type Board struct {
	// pieces[color][kind]
	pieces [2][2]Bitboard

	sideToMove       Color
	forcedCapturePos Square

	rules Rules

	// Zobrist key of pieces, side to move and forced square.
	zobristKey uint64
}

// NewBoard returns a board in the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init resets to the starting layout: red checkers on 1..12, white checkers on
// 21..32, red to move, no chain in progress. Rules are kept.
func (b *Board) Init() {
	b.pieces = [2][2]Bitboard{
		Red:   {Checker: RedStartBB},
		White: {Checker: WhiteStartBB},
	}
	b.sideToMove = Red
	b.forcedCapturePos = NoSquare
	b.zobristKey = b.ComputeZobrist()
}

// Copy returns an independent board with the same state.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Set replaces the placement, side to move and forced square verbatim. The
// placement is not validated; see Validate.
func (b *Board) Set(p Placement, side Color, forcedCapturePos Square) {
	b.pieces = [2][2]Bitboard{
		Red:   {Checker: p.RedCheckers, King: p.RedKings},
		White: {Checker: p.WhiteCheckers, King: p.WhiteKings},
	}
	b.sideToMove = side
	b.forcedCapturePos = forcedCapturePos
	b.zobristKey = b.ComputeZobrist()
}

// Rules returns the active variant switches.
func (b *Board) Rules() Rules { return b.rules }

// SetRules changes the variant switches. Copies inherit them.
func (b *Board) SetRules(r Rules) { b.rules = r }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// ForcedCapturePos returns the square a piece must continue capturing from,
// or NoSquare.
func (b *Board) ForcedCapturePos() Square { return b.forcedCapturePos }

// Placement returns a copy of the piece masks.
func (b *Board) Placement() Placement {
	return Placement{
		RedCheckers:   b.pieces[Red][Checker],
		RedKings:      b.pieces[Red][King],
		WhiteCheckers: b.pieces[White][Checker],
		WhiteKings:    b.pieces[White][King],
	}
}

// Pieces returns the mask for one color/kind combination.
func (b *Board) Pieces(c Color, k PieceKind) Bitboard { return b.pieces[c&1][k&1] }

// ColorOccupancy returns all squares held by color c.
func (b *Board) ColorOccupancy(c Color) Bitboard {
	return b.pieces[c&1][Checker] | b.pieces[c&1][King]
}

// Occupancy returns all occupied squares.
func (b *Board) Occupancy() Bitboard {
	return b.ColorOccupancy(Red) | b.ColorOccupancy(White)
}

// IsOccupiedBy reports whether sq holds a piece of color c and kind k.
func (b *Board) IsOccupiedBy(c Color, k PieceKind, sq Square) bool {
	return b.pieces[c&1][k&1].Occupied(sq)
}

// IsOccupiedByColor reports whether sq holds any piece of color c.
func (b *Board) IsOccupiedByColor(c Color, sq Square) bool {
	return b.ColorOccupancy(c).Occupied(sq)
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool { return !b.Occupancy().Occupied(sq) }

// PieceAt returns the piece on sq. ok is false for empty squares.
func (b *Board) PieceAt(sq Square) (c Color, k PieceKind, ok bool) {
	bit := SquareBB(sq)
	for c = Red; c <= White; c++ {
		for k = Checker; k <= King; k++ {
			if b.pieces[c][k]&bit != 0 {
				return c, k, true
			}
		}
	}
	return Red, Checker, false
}

// Hash returns the current Zobrist key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// Validate checks the position invariants: the four masks are pairwise
// disjoint, a forced square belongs to the side to move and the Zobrist key
// matches the position. It returns nil for a consistent board.
func (b *Board) Validate() error {
	var seen Bitboard
	for c := Red; c <= White; c++ {
		for k := Checker; k <= King; k++ {
			m := b.pieces[c][k]
			if overlap := seen & m; overlap != EmptyBB {
				return fmt.Errorf("%w: %s %s on %v", ErrOverlappingMasks, c, k, overlap.Squares())
			}
			seen |= m
		}
	}
	if f := b.forcedCapturePos; f != NoSquare && !b.IsOccupiedByColor(b.sideToMove, f) {
		return fmt.Errorf("%w: square %d", ErrForcedSquare, f)
	}
	if b.zobristKey != b.ComputeZobrist() {
		return ErrHashMismatch
	}
	return nil
}

// toggle flips sq in the c/k mask and keeps the Zobrist key in step.
func (b *Board) toggle(c Color, k PieceKind, sq Square) {
	b.pieces[c][k] = b.pieces[c][k].Toggle(sq)
	b.zobristKey ^= zobristPiece[c][k][sq]
}

// setForced records the chain square, updating the Zobrist key.
func (b *Board) setForced(sq Square) {
	b.zobristKey ^= zobristForced[b.forcedCapturePos]
	b.forcedCapturePos = sq
	b.zobristKey ^= zobristForced[sq]
}

// passTurn hands the move to the opponent.
func (b *Board) passTurn() {
	b.sideToMove = b.sideToMove.Other()
	b.zobristKey ^= zobristSide
}

// Draw renders the board as an 8x8 diagram seen from white's side, square 32
// in the top-left dark cell, using the visual characters (# for an empty
// playable square).
func (b *Board) Draw() string {
	visual := VisualFromPlacement(b.Placement())
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteString(visual[row*8 : row*8+8])
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s to move", b.sideToMove)
	if b.forcedCapturePos != NoSquare {
		fmt.Fprintf(&sb, ", continue capturing from %d", b.forcedCapturePos)
	}
	sb.WriteByte('\n')
	return sb.String()
}
