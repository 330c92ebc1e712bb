package notification

import "errors"

var (
	ErrNotFound    = errors.New("notification not found")
	ErrInvalidType = errors.New("unknown notification type")
)
