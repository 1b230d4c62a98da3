package draughts

// Perft counts leaf nodes (action sequences) from the position for a given
// depth. Every action is one ply, so each step of a capture chain counts
// separately. Children are explored on value copies of the board.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Action, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]Action
}

func (pc *perftCtx) bufFor(depth int) []Action {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Action, 0, 64)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	actions := b.GenerateActionsInto(pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(actions))
	}
	var nodes uint64
	for _, a := range actions {
		child := *b
		child.Apply(a)
		nodes += perftRec(&child, depth-1, pc)
	}
	// Keep the grown buffer for the next sibling at this depth.
	pc.bufs[depth] = actions
	return nodes
}

// PerftDivide returns a map from each legal root action to the number of leaf
// nodes reachable through it at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[Action]uint64 {
	result := make(map[Action]uint64)
	if depth <= 0 {
		return result
	}
	for _, a := range b.LegalActions() {
		child := b.Copy()
		child.Apply(a)
		result[a] = Perft(child, depth-1)
	}
	return result
}
