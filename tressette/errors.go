package tressette

import "errors"

// Caller errors returned by the engine. None of them leaves the game
// state modified.
var (
	ErrNotPlayerTurn    = errors.New("not player's turn")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrIllegalPlay      = errors.New("illegal play")
	ErrInvalidGameState = errors.New("invalid game state")
)
