package location

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidRadius    = errors.New("location radius must be greater than zero")
	ErrCodeExists       = errors.New("location code already exists")
)
