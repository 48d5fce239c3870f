package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is deactivated")
	ErrEmailExists      = errors.New("email already registered")
	ErrManagerNotFound  = errors.New("linked manager not found")
)
