package timetable

import "errors"

var (
	ErrEntryNotFound = errors.New("timetable entry not found")
)
