package draughts_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers-engine/draughts"
)

func TestApplyRedCapture(t *testing.T) {
	b := visualBoard(t,
		" w w w w"+
			"w w w w "+
			" w # w w"+
			"# w # # "+
			" r # # #"+
			"# r r r "+
			" r r r r"+
			"r r r r ", draughts.Red)
	b.Apply(b.LegalActions()[0])
	assert.Equal(t, mustSquares(t,
		" w w w w"+
			"w w w w "+
			" w r w w"+
			"# # # # "+
			" # # # #"+
			"# r r r "+
			" r r r r"+
			"r r r r "), squares(b))
	assert.Equal(t, draughts.White, b.SideToMove())
	assert.Equal(t, draughts.NoSquare, b.ForcedCapturePos())
	require.NoError(t, b.Validate())
}

func TestApplySimpleMovePassesTurn(t *testing.T) {
	b := draughts.NewBoard()
	b.Apply(move(9, 14))
	assert.Equal(t, "rrrrrrrr-rrr-r------wwwwwwwwwwww w", b.String())
	require.NoError(t, b.Validate())
}

func TestConsecutiveWhiteCaptures(t *testing.T) {
	b := visualBoard(t,
		" # w # #"+
			"# r # # "+
			" # # # #"+
			"# r r r "+
			" # # # #"+
			"# # # r "+
			" # # # #"+
			"# # # r ", draughts.White)
	require.Equal(t, "r-------r-------rrr-------r---w-", squares(b))

	chain := []draughts.Action{
		capture(27, 31, 24),
		capture(19, 24, 15),
		capture(18, 15, 22),
		capture(17, 22, 13),
		capture(9, 13, 6),
	}
	for i, want := range chain {
		requireActions(t, []draughts.Action{want}, b.LegalActions())
		b.Apply(want)
		require.NoError(t, b.Validate())
		if i < len(chain)-1 {
			assert.Equal(t, draughts.White, b.SideToMove(), "step %d", i)
			assert.Equal(t, want.To(), b.ForcedCapturePos(), "step %d", i)
		}
	}
	assert.Equal(t, draughts.Red, b.SideToMove())
	assert.Equal(t, draughts.NoSquare, b.ForcedCapturePos())

	requireActions(t, []draughts.Action{capture(6, 1, 10)}, b.LegalActions())
	b.Apply(capture(6, 1, 10))
	assert.Equal(t, "---------r----------------------", squares(b))
	assert.Equal(t, draughts.White, b.SideToMove())
	assert.Empty(t, b.LegalActions())
}

func TestPromotionAfterCapture(t *testing.T) {
	b := visualBoard(t,
		" # # # #"+
			"# # # # "+
			" # # # #"+
			"# # w # "+
			" # # # #"+
			"# # # w "+
			" # # r #"+
			"r # # # ", draughts.White)
	requireActions(t, []draughts.Action{capture(6, 9, 2)}, b.LegalActions())
	b.Apply(capture(6, 9, 2))
	assert.Equal(t, "-W-r-------------w--------------", squares(b))
	assert.Equal(t, draughts.Red, b.SideToMove())
	assert.True(t, b.IsOccupiedBy(draughts.White, draughts.King, 2))

	requireActions(t, []draughts.Action{move(4, 8)}, b.LegalActions())
	b.Apply(move(4, 8))
	assert.Equal(t, "-W-----r---------w--------------", squares(b))
}

func TestNoPromotionMidChain(t *testing.T) {
	b := visualBoard(t,
		" # # # #"+
			"# # # # "+
			" # # # #"+
			"# # w # "+
			" # # # #"+
			"# # # w "+
			" # r r #"+
			"# # # # ", draughts.White)
	b.Apply(capture(6, 9, 2))
	assert.Equal(t, "-w----r----------w--------------", squares(b))
	assert.Equal(t, draughts.Square(2), b.ForcedCapturePos())
	assert.True(t, b.IsOccupiedBy(draughts.White, draughts.Checker, 2))
	requireActions(t, []draughts.Action{capture(7, 2, 11)}, b.LegalActions())

	b.Apply(capture(7, 2, 11))
	assert.Equal(t, "----------w------w--------------", squares(b))
	assert.Equal(t, draughts.Red, b.SideToMove())
	assert.Empty(t, b.LegalActions())
}

func TestCaptureVariantChoosesChain(t *testing.T) {
	b := visualBoard(t,
		" # # # #"+
			"# # # # "+
			" # # # #"+
			"# # w # "+
			" # # # #"+
			"# # w # "+
			" r r r #"+
			"# # # # ", draughts.White)
	actions := b.LegalActions()
	requireActions(t, []draughts.Action{capture(7, 10, 3), capture(6, 10, 1)}, actions)

	short := b.Copy()
	short.Apply(actions[1])
	assert.Equal(t, "W-----rr---------w--------------", squares(short))
	assert.Equal(t, draughts.Red, short.SideToMove())
	requireActions(t, []draughts.Action{move(7, 11), move(7, 10), move(8, 12), move(8, 11)}, short.LegalActions())

	long := b.Copy()
	long.Apply(actions[0])
	assert.Equal(t, "--w--r-r---------w--------------", squares(long))
	assert.Equal(t, draughts.Square(3), long.ForcedCapturePos())
	requireActions(t, []draughts.Action{capture(8, 3, 12)}, long.LegalActions())
	long.Apply(capture(8, 3, 12))
	assert.Equal(t, "-----r-----w-----w--------------", squares(long))
	requireActions(t, []draughts.Action{move(6, 10), move(6, 9)}, long.LegalActions())

	// Neither branch touches b.
	requireActions(t, actions, b.LegalActions())
}

func TestKingChainContinues(t *testing.T) {
	b := draughts.MustParsePosition("R--------w------------w--------- r")
	b.Apply(kingCapture(10, 1, 19))
	assert.Equal(t, "------------------R---w--------- r 19", b.String())
	requireActions(t, []draughts.Action{kingCapture(23, 19, 26), kingCapture(23, 19, 30)}, b.LegalActions())

	b.Apply(kingCapture(23, 19, 26))
	assert.Equal(t, "-------------------------R------ w", b.String())
	assert.False(t, b.HasLegalActions())
	require.NoError(t, b.Validate())
}

func TestLegacyKingChainsEndAfterOneCapture(t *testing.T) {
	b := draughts.MustParsePosition("R--------w------------w--------- r")
	b.SetRules(draughts.Rules{LegacyKingChains: true})
	b.Apply(kingCapture(10, 1, 19))
	assert.Equal(t, "------------------R---w--------- w", b.String())
	requireActions(t, []draughts.Action{capture(19, 23, 16)}, b.LegalActions())
}

func TestForcedKingSquareUnderLegacyRules(t *testing.T) {
	b := draughts.MustParsePosition("------------------R---w--------- r 19")
	requireActions(t, []draughts.Action{kingCapture(23, 19, 26), kingCapture(23, 19, 30)}, b.LegalActions())

	b.SetRules(draughts.Rules{LegacyKingChains: true})
	assert.Empty(t, b.LegalActions())
	assert.Empty(t, b.GenerateCapturesFrom(19))
}

func TestApplyCheckedRejectsIllegal(t *testing.T) {
	b := draughts.NewBoard()
	before := b.String()
	err := b.ApplyChecked(move(9, 18))
	require.Error(t, err)
	assert.True(t, errors.Is(err, draughts.ErrIllegalAction))
	assert.Equal(t, before, b.String())

	require.NoError(t, b.ApplyChecked(move(12, 16)))
	assert.Equal(t, draughts.White, b.SideToMove())
}

func TestApplyKeepsHashInStep(t *testing.T) {
	b := draughts.MustParsePosition("-----rr-w--------w-------------- w")
	b.Apply(capture(6, 9, 2))
	assert.Equal(t, b.ComputeZobrist(), b.Hash())
	b.Apply(capture(7, 2, 11))
	assert.Equal(t, b.ComputeZobrist(), b.Hash())

	fresh := draughts.MustParsePosition(b.String())
	assert.Equal(t, fresh.Hash(), b.Hash())
}
