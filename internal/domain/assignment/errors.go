package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrDuplicateActive    = errors.New("an active assignment already exists for this staff member and location")
)
