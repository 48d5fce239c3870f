package attendance

import "errors"

// Attendance domain errors. AlreadyClockedIn and AlreadyClockedOut are
// idempotent no-op signals, not hard failures; callers surface them to the
// user without treating them as exception paths.
var (
	ErrAlreadyClockedIn       = errors.New("you have already clocked in today")
	ErrAlreadyClockedOut      = errors.New("you have already clocked out today")
	ErrNoAttendanceRecord     = errors.New("no attendance record exists for today")
	ErrOutsideGeofence        = errors.New("you are outside the location's service radius")
	ErrOfficeLocationRequired = errors.New("management must clock in at an office location")
	ErrConflictingLeaveState  = errors.New("an approved leave already covers this date")
	ErrNotAuthorizedToClock   = errors.New("not authorized to clock for this employee")
	ErrNotAuthorizedToFlag    = errors.New("not authorized to flag this record")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrFlagNotRaised      = errors.New("the flag has not been raised on this record")
	ErrAlreadyProcessed   = errors.New("this approval has already been decided")
)
