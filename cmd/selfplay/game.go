package main

import (
	"fmt"
	"math/rand"

	"checkers-engine/draughts"
)

// Result is the outcome of one random game.
type Result struct {
	Final *draughts.Board
	Plies int
	// Draw is set when the ply limit was reached.
	Draw bool
}

// Winner names the winning side, or "draw".
func (r Result) Winner() string {
	if r.Draw {
		return "draw"
	}
	// The side to move has no legal actions and loses.
	return r.Final.SideToMove().Other().String()
}

// Tally accumulates results over many games.
type Tally struct {
	Games int
	Wins  [2]int
	Draws int
	Plies int
}

func (t *Tally) Add(r Result) {
	t.Games++
	t.Plies += r.Plies
	if r.Draw {
		t.Draws++
		return
	}
	t.Wins[r.Final.SideToMove().Other()]++
}

// PlayRandom plays uniformly random legal actions from a copy of start until
// the side to move has none or maxPlies is reached. Every position reached is
// validated.
func PlayRandom(start *draughts.Board, rng *rand.Rand, maxPlies int) (Result, error) {
	b := start.Copy()
	buf := make([]draughts.Action, 0, 64)
	for ply := 0; ply < maxPlies; ply++ {
		buf = b.GenerateActionsInto(buf[:0])
		if len(buf) == 0 {
			return Result{Final: b, Plies: ply}, nil
		}
		a := buf[rng.Intn(len(buf))]
		b.Apply(a)
		if err := b.Validate(); err != nil {
			return Result{Final: b, Plies: ply + 1}, fmt.Errorf("ply %d after %s: %w", ply+1, a.Describe(), err)
		}
	}
	return Result{Final: b, Plies: maxPlies, Draw: b.HasLegalActions()}, nil
}
