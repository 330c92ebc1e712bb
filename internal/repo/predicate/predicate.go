// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// DirectoryEntry is the predicate function for directoryentry builders.
type DirectoryEntry func(*sql.Selector)

// FacultyProfile is the predicate function for facultyprofile builders.
type FacultyProfile func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// RoleCounter is the predicate function for rolecounter builders.
type RoleCounter func(*sql.Selector)

// StudentProfile is the predicate function for studentprofile builders.
type StudentProfile func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
