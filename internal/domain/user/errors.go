package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrAdminRequired = errors.New("admin privileges required")
)
