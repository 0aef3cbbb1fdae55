package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrWrongPhase       = errors.New("action is not allowed in the current phase")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNotYourWorker    = errors.New("worker belongs to another player")
	ErrUnknownWorker    = errors.New("unknown worker")
	ErrOutOfBounds      = errors.New("position is outside the board")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrCellDomed        = errors.New("cell is domed")
	ErrTooHigh          = errors.New("cell is too high to climb")
	ErrMissingBuild     = errors.New("turn must include a build")
	ErrQuotaExceeded    = errors.New("all workers are already placed")
	ErrInvalidDirection = errors.New("invalid direction")

	ErrInvalidAction     = errors.New("invalid action")
	ErrTimeout           = errors.New("player did not respond in time")
	ErrProtocolViolation = errors.New("protocol violation")
	ErrIdentityMismatch  = errors.New("action claims another player's identity")

	ErrNotFound = errors.New("not found")
)
