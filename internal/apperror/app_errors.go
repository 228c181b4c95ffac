package apperror

import "errors"

var (
	ErrRoundOver       = errors.New("round is already over")
	ErrOutOfRange      = errors.New("cell is out of range")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidGridSize = errors.New("invalid grid size")
)
