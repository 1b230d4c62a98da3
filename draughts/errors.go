package draughts

import "errors"

var (
	// ErrInvalidNotation is returned for board strings that are not 32 (or
	// 64 visual) characters of r, R, w, W and -.
	ErrInvalidNotation = errors.New("invalid board notation")
	// ErrInvalidPosition is returned for malformed position strings.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrInvalidAction is returned for action tokens that do not parse.
	ErrInvalidAction = errors.New("invalid action")
	// ErrIllegalAction is returned when an action is not among the legal actions.
	ErrIllegalAction = errors.New("illegal action")

	ErrOverlappingMasks = errors.New("piece masks overlap")
	ErrForcedSquare     = errors.New("forced capture square not held by side to move")
	ErrHashMismatch     = errors.New("zobrist key out of sync")
)
