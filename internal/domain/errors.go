package domain

import "errors"

var (
	// ErrUnknownRoom indicates a room name that the world does not define.
	ErrUnknownRoom = errors.New("unknown room")
	// ErrDanglingExit indicates an exit or puzzle reward pointing at a missing room.
	ErrDanglingExit = errors.New("exit points to a missing room")
	// ErrUnreachableRoom indicates a room that no path from the start room can reach.
	ErrUnreachableRoom = errors.New("room is unreachable from the start room")
	// ErrInputClosed is returned by prompters whose input stream has gone away.
	ErrInputClosed = errors.New("input closed")
	// ErrUnknownSession is returned when a session ID is not registered.
	ErrUnknownSession = errors.New("session not found")
)
