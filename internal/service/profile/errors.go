package profile

import "errors"

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrWrongRole              = errors.New("profile type does not match the account role")
	ErrInvalidGPA             = errors.New("gpa must be between 0 and 4")
	ErrInvalidConsultType     = errors.New("unknown consultation type")
	ErrInvalidDuration        = errors.New("default duration must be a positive number of minutes")
	ErrInvalidDailyLimit      = errors.New("max daily appointments must be positive")
	ErrInvalidBuffer          = errors.New("buffer minutes cannot be negative")
	ErrInvalidAdvanceBooking  = errors.New("advance booking window must be positive")
	ErrInvalidScheduleWeekday = errors.New("weekly schedule keys must be weekday names")
)
