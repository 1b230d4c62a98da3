package draughts_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"checkers-engine/draughts"
)

// visualBoard sets up a board from a 64-character visual layout.
func visualBoard(t testing.TB, visual string, side draughts.Color) *draughts.Board {
	t.Helper()
	p, err := draughts.PlacementFromVisual(visual)
	require.NoError(t, err)
	b := &draughts.Board{}
	b.Set(p, side, draughts.NoSquare)
	return b
}

// requireActions compares action lists, dumping the actual list on mismatch.
func requireActions(t *testing.T, want, got []draughts.Action) {
	t.Helper()
	require.Equal(t, want, got, "got actions:\n%s", spew.Sdump(got))
}

func move(from, to draughts.Square) draughts.Action {
	return draughts.NewMove(draughts.Checker, from, to)
}

func capture(captured, from, to draughts.Square) draughts.Action {
	return draughts.NewCapture(draughts.Checker, captured, from, to)
}

func kingMove(from, to draughts.Square) draughts.Action {
	return draughts.NewMove(draughts.King, from, to)
}

func kingCapture(captured, from, to draughts.Square) draughts.Action {
	return draughts.NewCapture(draughts.King, captured, from, to)
}

// squares reads the 32-character notation off a board.
func squares(b *draughts.Board) string {
	return draughts.NotationFromPlacement(b.Placement())
}

// mustSquares converts a visual layout to notation.
func mustSquares(t *testing.T, visual string) string {
	t.Helper()
	s, err := draughts.SquaresFromVisual(visual)
	require.NoError(t, err)
	return s
}
