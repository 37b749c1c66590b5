package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrGameNotFinished = errors.New("game is not finished yet")
	ErrHistoryEmpty    = errors.New("cannot undo the initial position")
	ErrNoRunningAgent  = errors.New("no agent run is outstanding")
	ErrInvalidScore    = errors.New("score must be 0, 0.5 or 1")
	ErrInvalidMove     = errors.New("invalid move token")
)
