package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")

	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
	ErrEmailInvalid    = errors.New("email address is not valid")

	ErrMailDispatch = errors.New("mail dispatch failed")
)
