package apperror

import "errors"

var (
	ErrConfiguration = errors.New("invalid game configuration")
	ErrInvalidColumn = errors.New("invalid column index")
	ErrColumnFull    = errors.New("column is full")
	ErrGameOver      = errors.New("game is already over")
)
