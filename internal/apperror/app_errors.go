package apperror

import "errors"

var (
	ErrInvalidCell   = errors.New("invalid cell")
	ErrInvalidJump   = errors.New("jump destination is out of range")
	ErrGameNotFound  = errors.New("game not found")
	ErrUnknownAction = errors.New("unknown action")

	ErrUnknownCommand = errors.New("unknown command")
)
