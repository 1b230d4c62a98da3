package draughts

// State is a snapshot of a position for display or transport.
type State struct {
	Squares      string   `json:"squares"`
	SideToMove   Color    `json:"sideToMove"`
	LegalActions []Action `json:"legalActions"`
}

// Render returns the board notation, the side to move and the actions legal
// in exactly this position.
func (b *Board) Render() State {
	return State{
		Squares:      NotationFromPlacement(b.Placement()),
		SideToMove:   b.sideToMove,
		LegalActions: b.LegalActions(),
	}
}
