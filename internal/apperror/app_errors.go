package apperror

import "errors"

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")

	ErrScoreNotFound      = errors.New("score not found")
	ErrMalformedScore     = errors.New("malformed score record")
	ErrUnknownStorage     = errors.New("unknown storage driver")
	ErrStorageUnavailable = errors.New("storage is unavailable")
)
