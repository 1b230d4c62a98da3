package draughts

// forward[c] are the directions a checker of color c moves in without capturing.
var forward = [2][2]Direction{
	Red:   {NorthWest, NorthEast},
	White: {SouthWest, SouthEast},
}

// checkerCaptureOrder is the scan order for a checker's one-step captures.
// Men capture in every direction, backward captures first.
var checkerCaptureOrder = [4]Direction{SouthWest, SouthEast, NorthWest, NorthEast}

// LegalActions returns the actions available to the side to move.
func (b *Board) LegalActions() []Action { return b.GenerateActionsInto(make([]Action, 0, 32)) }

// HasLegalActions reports whether the side to move can act at all.
func (b *Board) HasLegalActions() bool {
	var buf [64]Action
	return len(b.GenerateActionsInto(buf[:0])) > 0
}

// GenerateActionsInto appends the legal actions to dst and returns it.
//
// While a capture chain is in progress only captures from the chain square are
// legal. Otherwise captures are mandatory: if any piece of the side to move
// can capture, only captures are returned. Order is ascending square; within a
// square, checker captures SW, SE, NW, NE, checker moves in the two forward
// directions, and king rays NW, NE, SW, SE nearest first.
func (b *Board) GenerateActionsInto(dst []Action) []Action {
	if b.forcedCapturePos != NoSquare {
		return b.appendContinuations(dst, b.forcedCapturePos)
	}

	us := b.sideToMove
	checkers := b.pieces[us][Checker]
	own := checkers | b.pieces[us][King]
	start := len(dst)

	// Captures first; any capture suppresses every simple move.
	for bb := own; bb != EmptyBB; {
		sq, rest, _ := bb.PopLSB()
		bb = rest
		if checkers.Occupied(sq) {
			dst = b.appendCheckerCaptures(dst, sq, us)
		} else {
			dst = b.appendKingRays(dst, sq, us, true)
		}
	}
	if len(dst) > start {
		return dst
	}

	occ := b.Occupancy()
	for bb := own; bb != EmptyBB; {
		sq, rest, _ := bb.PopLSB()
		bb = rest
		if !checkers.Occupied(sq) {
			dst = b.appendKingRays(dst, sq, us, false)
			continue
		}
		for _, d := range forward[us] {
			ray := diagonals[sq][d]
			if len(ray) > 0 && !occ.Occupied(ray[0]) {
				dst = append(dst, NewMove(Checker, sq, ray[0]))
			}
		}
	}
	return dst
}

// GenerateCapturesFrom returns the captures available to the piece on sq, as
// used for capture-chain continuation. An empty square yields no captures.
func (b *Board) GenerateCapturesFrom(sq Square) []Action {
	return b.appendContinuations(nil, sq)
}

// appendContinuations appends the captures the piece on sq may continue a
// chain with. Checkers use the one-step scan. Kings use the flying scan,
// or capture nothing under Rules.LegacyKingChains.
func (b *Board) appendContinuations(dst []Action, sq Square) []Action {
	c, k, ok := b.PieceAt(sq)
	if !ok {
		return dst
	}
	if k == King {
		if b.rules.LegacyKingChains {
			return dst
		}
		return b.appendKingRays(dst, sq, c, true)
	}
	return b.appendCheckerCaptures(dst, sq, c)
}

// hasContinuation reports whether the piece on sq can keep capturing.
func (b *Board) hasContinuation(sq Square) bool {
	var buf [16]Action
	return len(b.appendContinuations(buf[:0], sq)) > 0
}

// appendCheckerCaptures appends one-step captures for a checker of color us
// on sq: an adjacent opponent piece with an empty square directly behind it.
func (b *Board) appendCheckerCaptures(dst []Action, sq Square, us Color) []Action {
	them := b.ColorOccupancy(us.Other())
	occ := b.Occupancy()
	for _, d := range checkerCaptureOrder {
		ray := diagonals[sq][d]
		if len(ray) < 2 {
			continue
		}
		if them.Occupied(ray[0]) && !occ.Occupied(ray[1]) {
			dst = append(dst, NewCapture(Checker, ray[0], sq, ray[1]))
		}
	}
	return dst
}

// appendKingRays walks each diagonal from a king of color us on sq. Empty
// squares before any opponent piece are moves; empty squares after exactly one
// opponent piece are captures of that piece, each landing square a separate
// action. The ray ends at an own piece or a second opponent piece. Only
// captures are appended when captures is set, only moves otherwise.
func (b *Board) appendKingRays(dst []Action, sq Square, us Color, captures bool) []Action {
	them := b.ColorOccupancy(us.Other())
	occ := b.Occupancy()
	for _, d := range Directions {
		if captures && rays[sq][d]&them == EmptyBB {
			continue
		}
		obstacles := 0
		victim := NoSquare
		for _, t := range diagonals[sq][d] {
			if !occ.Occupied(t) {
				switch {
				case obstacles == 0 && !captures:
					dst = append(dst, NewMove(King, sq, t))
				case obstacles == 1 && captures:
					dst = append(dst, NewCapture(King, victim, sq, t))
				}
				continue
			}
			if !captures || !them.Occupied(t) {
				break
			}
			obstacles++
			if obstacles == 2 {
				break
			}
			victim = t
		}
	}
	return dst
}
