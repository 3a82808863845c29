package lecture

import "errors"

var (
	ErrLectureNotFound = errors.New("lecture not found")

	// ErrRoomConflict is returned when a lecture would occupy an already
	// booked (date, time slot, block, room) tuple.
	ErrRoomConflict = errors.New("room is already booked for this time slot")

	ErrInvalidStatus = errors.New("invalid lecture status")
)
