package directory

import "errors"

var (
	ErrEntryNotFound = errors.New("directory entry not found")
	ErrNotFaculty    = errors.New("user is not a faculty member")
)
