package draughts

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Apply plays an action on the board in place.
//
// The action must come from LegalActions on this board; anything else leaves
// the board in an unspecified state. After a capture the piece keeps the move
// (ForcedCapturePos is set to its landing square) as long as it can capture
// again. Promotion happens only when the turn ends, never mid-chain.
func (b *Board) Apply(a Action) {
	us := b.sideToMove
	kind := a.Piece()
	from, to := a.From(), a.To()

	b.toggle(us, kind, from)
	b.toggle(us, kind, to)

	if !a.IsCapture() {
		b.promote(us, to)
		b.passTurn()
		return
	}

	them := us.Other()
	victim := a.Captured()
	victimKind := Checker
	if b.pieces[them][King].Occupied(victim) {
		victimKind = King
	}
	b.toggle(them, victimKind, victim)

	if b.hasContinuation(to) {
		b.setForced(to)
		return
	}
	b.setForced(NoSquare)
	b.promote(us, to)
	b.passTurn()
}

// ApplyChecked plays a only if it is among the legal actions, returning
// ErrIllegalAction otherwise. The board is untouched on error.
func (b *Board) ApplyChecked(a Action) error {
	if !slices.Contains(b.LegalActions(), a) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalAction, a.Describe(), b.sideToMove)
	}
	b.Apply(a)
	return nil
}

// promote crowns a checker of color c standing on its promotion rank at sq.
func (b *Board) promote(c Color, sq Square) {
	if !(b.pieces[c][Checker] & promotionRank[c]).Occupied(sq) {
		return
	}
	b.toggle(c, Checker, sq)
	b.toggle(c, King, sq)
}
