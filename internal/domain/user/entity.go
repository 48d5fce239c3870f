package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	// EmployeeID links the login identity to its workforce record.
	EmployeeID *string
	GoogleID   *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
