package teacher

import "errors"

var (
	ErrTeacherNotFound  = errors.New("teacher not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
