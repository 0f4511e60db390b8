package api

import (
	"errors"
	"fmt"

	"github.com/okian/cricanalytics/internal/domain/compare"
)

// Sentinel kinds for API errors.
var (
	ErrServe      = errors.New("http serve failed")
	ErrBadRequest = errors.New("bad request")
)

// compareErrorCode maps comparison guard states to response codes.
func compareErrorCode(err error) string {
	switch {
	case errors.Is(err, compare.ErrNotEnoughPlayers):
		return "not_enough_players"
	case errors.Is(err, compare.ErrSamePlayer):
		return "same_player"
	case errors.Is(err, compare.ErrUnknownPlayer):
		return "unknown_player"
	default:
		return "compare_failed"
	}
}

func badRequest(op, msg string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrBadRequest, msg)
}
