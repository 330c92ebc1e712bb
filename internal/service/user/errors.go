package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidFirstName = errors.New("first name must be between 1 and 100 characters")
	ErrInvalidLastName  = errors.New("last name must be between 1 and 100 characters")
)
