package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/approval"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/assignment"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/attendance"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/auth"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/leave"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/location"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/user"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Token is invalid or expired")
	case errors.Is(err, auth.ErrRevokedToken):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Authorization
	case errors.Is(err, approval.ErrNotAuthorizedToApprove),
		errors.Is(err, attendance.ErrNotAuthorizedToClock),
		errors.Is(err, attendance.ErrNotAuthorizedToFlag):
		Forbidden(w, err.Error())

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Linked manager not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is deactivated")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Location and assignment
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrCodeExists):
		Conflict(w, "Location code already exists")
	case errors.Is(err, location.ErrInvalidRadius):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrDuplicateActive):
		Conflict(w, err.Error())

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoAttendanceRecord):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrConflictingLeaveState),
		errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrOutsideGeofence):
		UnprocessableEntity(w, "OUTSIDE_GEOFENCE", err.Error())
	case errors.Is(err, attendance.ErrOfficeLocationRequired):
		UnprocessableEntity(w, "OFFICE_LOCATION_REQUIRED", err.Error())
	case errors.Is(err, attendance.ErrFlagNotRaised):
		BadRequest(w, err.Error(), nil)

	// Leave and routing
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed),
		errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, err.Error())
	case errors.Is(err, approval.ErrNoApproverAvailable):
		UnprocessableEntity(w, "NO_APPROVER_AVAILABLE", err.Error())

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
