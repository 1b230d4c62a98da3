package draughts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Action encodes a move or a capture in a 32-bit value.
type Action uint32

// Bitfield layout within Action (from LSB to MSB)
const (
	actionFromShift     = 0  // 6 bits
	actionToShift       = 6  // 6 bits
	actionCapturedShift = 12 // 6 bits
	actionPieceShift    = 18 // 1 bit
	actionCaptureBit    = 1 << 19
)

// NoAction is the zero Action; it is never generated.
const NoAction Action = 0

// ActionKind tags the two Action variants.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionCapture
)

func (k ActionKind) String() string {
	if k == ActionCapture {
		return "capture"
	}
	return "move"
}

// NewMove constructs a simple move.
func NewMove(piece PieceKind, from, to Square) Action {
	return Action(uint32(from&0x3F)<<actionFromShift |
		uint32(to&0x3F)<<actionToShift |
		uint32(piece&1)<<actionPieceShift)
}

// NewCapture constructs a capture of the piece on captured, landing on to.
func NewCapture(piece PieceKind, captured, from, to Square) Action {
	return NewMove(piece, from, to) |
		Action(uint32(captured&0x3F)<<actionCapturedShift) |
		actionCaptureBit
}

// From returns the source square.
func (a Action) From() Square { return Square((uint32(a) >> actionFromShift) & 0x3F) }

// To returns the destination square.
func (a Action) To() Square { return Square((uint32(a) >> actionToShift) & 0x3F) }

// Captured returns the square of the captured piece, NoSquare for moves.
func (a Action) Captured() Square { return Square((uint32(a) >> actionCapturedShift) & 0x3F) }

// Piece returns the kind of the acting piece.
func (a Action) Piece() PieceKind { return PieceKind((uint32(a) >> actionPieceShift) & 1) }

// IsCapture reports whether the action captures.
func (a Action) IsCapture() bool { return a&actionCaptureBit != 0 }

// Kind returns ActionMove or ActionCapture.
func (a Action) Kind() ActionKind {
	if a.IsCapture() {
		return ActionCapture
	}
	return ActionMove
}

// String uses draughts notation: "9-14" for a move, "16x23" for a capture.
func (a Action) String() string {
	if a.IsCapture() {
		return fmt.Sprintf("%dx%d", a.From(), a.To())
	}
	return fmt.Sprintf("%d-%d", a.From(), a.To())
}

// Describe is the verbose form used in logs, e.g. "checker 16x23 (19)".
func (a Action) Describe() string {
	if a.IsCapture() {
		return fmt.Sprintf("%s %s (%d)", a.Piece(), a, a.Captured())
	}
	return fmt.Sprintf("%s %s", a.Piece(), a)
}

type actionJSON struct {
	Kind     ActionKind `json:"kind"`
	Piece    PieceKind  `json:"piece"`
	Captured Square     `json:"captured,omitempty"`
	From     Square     `json:"from"`
	To       Square     `json:"to"`
}

// MarshalText encodes the kind as "move" or "capture".
func (k ActionKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// MarshalJSON encodes the action as an object; captured is omitted for moves.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(actionJSON{
		Kind:     a.Kind(),
		Piece:    a.Piece(),
		Captured: a.Captured(),
		From:     a.From(),
		To:       a.To(),
	})
}

// ParseAction resolves a "from-to" or "fromxto" token against a list of legal
// actions. From and to identify an action uniquely within one legal list.
func ParseAction(s string, legal []Action) (Action, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	sep := strings.IndexAny(s, "-x")
	if sep <= 0 || sep == len(s)-1 {
		return NoAction, fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
	from, err := parseSquare(s[:sep])
	if err != nil {
		return NoAction, fmt.Errorf("%w: %q: %v", ErrInvalidAction, s, err)
	}
	to, err := parseSquare(s[sep+1:])
	if err != nil {
		return NoAction, fmt.Errorf("%w: %q: %v", ErrInvalidAction, s, err)
	}
	capture := s[sep] == 'x'
	i := slices.IndexFunc(legal, func(a Action) bool {
		return a.From() == from && a.To() == to && a.IsCapture() == capture
	})
	if i < 0 {
		return NoAction, fmt.Errorf("%w: %s", ErrIllegalAction, s)
	}
	return legal[i], nil
}

func parseSquare(s string) (Square, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return NoSquare, err
	}
	if n < 1 || n > NumSquares {
		return NoSquare, fmt.Errorf("square %d out of range", n)
	}
	return Square(n), nil
}
