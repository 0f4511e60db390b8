package compare

import "errors"

// Sentinel kinds for comparison guard states.
var (
	ErrNotEnoughPlayers = errors.New("at least two players are required for comparison")
	ErrSamePlayer       = errors.New("select two different players to compare")
	ErrUnknownPlayer    = errors.New("unknown player")
)
