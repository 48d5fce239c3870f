package assignment

import "time"

// Assignment links a staff member to a supervisor at a location. A staff
// member may hold several active assignments at once (different locations or
// shifts); when more than one matches, the most recently created active
// assignment wins.
type Assignment struct {
	ID           string
	StaffID      string
	SupervisorID string
	LocationID   string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joins
	StaffName      *string
	SupervisorName *string
	LocationName   *string
}
