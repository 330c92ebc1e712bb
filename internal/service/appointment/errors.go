package appointment

import "errors"

var (
	ErrNotFound               = errors.New("appointment not found")
	ErrNotYours               = errors.New("appointment belongs to another user")
	ErrInvalidDecision        = errors.New("decision must be accepted or declined")
	ErrInvalidTransition      = errors.New("appointment is not in a state that allows this action")
	ErrRescheduleTimeRequired = errors.New("Pick a new time first.")
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
	ErrReasonRequired         = errors.New("a reason for the appointment is required")
	ErrRequestedTimeRequired  = errors.New("a requested time is required")
	ErrFacultyNotFound        = errors.New("faculty member not found")
	ErrStudentNotFound        = errors.New("student not found")
)
