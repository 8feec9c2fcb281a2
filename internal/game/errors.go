package game

import "errors"

var (
	ErrRoomNotFound  = errors.New("room-not-found")
	ErrInvalidStart  = errors.New("invalid-start")
	ErrAlreadyInRoom = errors.New("already-in-room")
	ErrDrawerGuess   = errors.New("drawer-cannot-guess")
)
