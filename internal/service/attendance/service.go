package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/approval"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/assignment"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/attendance"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/leave"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/location"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/geo"
	"github.com/utiliops/fieldforce-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	location.LocationRepository
	assignment.AssignmentRepository
	leave.LeaveRepository
	fileService file.FileService
	grace       time.Duration
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
	assignmentRepo assignment.AssignmentRepository,
	leaveRepo leave.LeaveRepository,
	fileService file.FileService,
	graceMinutes int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		LocationRepository:   locationRepo,
		AssignmentRepository: assignmentRepo,
		LeaveRepository:      leaveRepo,
		fileService:          fileService,
		grace:                time.Duration(graceMinutes) * time.Minute,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func statusPtrToString(s *attendance.ApprovalStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func toResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	display := attendance.DeriveDailyStatus(&rec, rec.Status == attendance.StatusOnLeave)

	resp := attendance.AttendanceResponse{
		ID:               rec.ID,
		StaffID:          rec.StaffID,
		SupervisorID:     rec.SupervisorID,
		Date:             rec.Date.Format("2006-01-02"),
		LocationID:       rec.LocationID,
		LocationName:     rec.LocationName,
		ClockInTime:      timePtrToString(rec.ClockIn),
		ClockOutTime:     timePtrToString(rec.ClockOut),
		ClockInLatitude:  rec.ClockInLatitude,
		ClockInLongitude: rec.ClockInLongitude,
		ClockInProofURL:  rec.ClockInProofURL,
		ClockOutProofURL: rec.ClockOutProofURL,
		Status:           rec.Status,
		DisplayStatus:    display,
		LateMinutes:      rec.LateMinutes,
		ApprovalStatus:   string(rec.ApprovalStatus),
		Overtime:         rec.Overtime,
		OvertimeStatus:   statusPtrToString(rec.OvertimeStatus),
		DoubleDuty:       rec.DoubleDuty,
		DoubleDutyStatus: statusPtrToString(rec.DoubleDutyStatus),
		OverrideBy:       rec.OverrideBy,
		RejectionReason:  rec.RejectionReason,
	}
	if rec.StaffName != nil {
		resp.StaffName = *rec.StaffName
	}
	return resp
}

// targetEmployee loads and checks the staff member being clocked.
func (a *AttendanceServiceImpl) targetEmployee(ctx context.Context, staffID string) (employee.Employee, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, staffID)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.Active {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return emp, nil
}

// verifyLocation re-fetches the location and runs the geofence check. When
// the point falls outside the radius, a manager or above acting on another
// employee in their own department may override; the override is recorded
// and audited.
func (a *AttendanceServiceImpl) verifyLocation(ctx context.Context, actor approval.Actor, emp employee.Employee, locationID string, lat, lon float64) (location.Location, *string, error) {
	loc, err := a.LocationRepository.GetByID(ctx, locationID)
	if err != nil {
		return location.Location{}, nil, err
	}

	// Managers and general managers clocking themselves must be at an office.
	if actor.ID == emp.ID && (emp.Role == role.RoleManager || emp.Role == role.RoleGeneralManager) && !loc.Office() {
		return location.Location{}, nil, attendance.ErrOfficeLocationRequired
	}

	if geo.WithinRadius(lat, lon, loc.Latitude, loc.Longitude, loc.RadiusMeters) {
		return loc, nil, nil
	}

	canOverride := actor.ID != emp.ID &&
		actor.Role.HasManagementPrivileges() &&
		approval.SameDepartment(emp.Department, actor)
	if !canOverride {
		return location.Location{}, nil, attendance.ErrOutsideGeofence
	}

	slog.Warn("geofence override applied",
		"actor_id", actor.ID,
		"actor_role", string(actor.Role),
		"staff_id", emp.ID,
		"location_id", loc.ID,
		"distance_m", geo.HaversineDistance(lat, lon, loc.Latitude, loc.Longitude))

	overrideBy := actor.ID
	return loc, &overrideBy, nil
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, actor approval.Actor, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	emp, err := a.targetEmployee(ctx, req.StaffID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if actor.ID != req.StaffID && !actor.Role.HasFieldLeadershipPrivileges() {
		return attendance.AttendanceResponse{}, attendance.ErrNotAuthorizedToClock
	}

	onLeave, err := a.LeaveRepository.HasApprovedLeaveOn(ctx, req.StaffID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check approved leave: %w", err)
	}
	if onLeave {
		return attendance.AttendanceResponse{}, attendance.ErrConflictingLeaveState
	}

	loc, overrideBy, err := a.verifyLocation(ctx, actor, emp, req.LocationID, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var supervisorID *string
	asg, err := a.AssignmentRepository.GetActive(ctx, req.StaffID, req.LocationID)
	if err == nil {
		supervisorID = &asg.SupervisorID
	} else if !errors.Is(err, assignment.ErrAssignmentNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve assignment: %w", err)
	}

	proofURL := req.ProofPhotoURL
	if req.File != nil && req.FileHeader != nil {
		url, err := a.fileService.UploadProofPhoto(ctx, req.StaffID, req.File, req.FileHeader)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload attendance proof: %w", err)
		}
		proofURL = &url
	}

	shiftStart := loc.ShiftStartFor(now)
	status, lateMinutes := attendance.ClockInStatus(now, shiftStart, a.grace)

	rec := attendance.Attendance{
		StaffID:          req.StaffID,
		SupervisorID:     supervisorID,
		Date:             today,
		LocationID:       &loc.ID,
		ClockIn:          &now,
		ClockInLatitude:  &req.Latitude,
		ClockInLongitude: &req.Longitude,
		ClockInProofURL:  proofURL,
		Status:           status,
		ApprovalStatus:   attendance.ApprovalPending,
		OverrideBy:       overrideBy,
	}
	if status == attendance.StatusLate {
		rec.LateMinutes = &lateMinutes
	}

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	if req.OvertimeRequested {
		if _, err := a.AttendanceRepository.RaiseFlag(ctx, created.ID, attendance.FlagOvertime); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to raise overtime flag: %w", err)
		}
	}
	if req.DoubleDutyRequested {
		if _, err := a.AttendanceRepository.RaiseFlag(ctx, created.ID, attendance.FlagDoubleDuty); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to raise double duty flag: %w", err)
		}
	}

	if req.OvertimeRequested || req.DoubleDutyRequested {
		created, err = a.AttendanceRepository.GetByID(ctx, created.ID)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance record: %w", err)
		}
	}

	return toResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, actor approval.Actor, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	emp, err := a.targetEmployee(ctx, req.StaffID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if actor.ID != req.StaffID && !actor.Role.HasFieldLeadershipPrivileges() {
		return attendance.AttendanceResponse{}, attendance.ErrNotAuthorizedToClock
	}

	rec, err := a.AttendanceRepository.GetByStaffAndDate(ctx, req.StaffID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil || rec.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoAttendanceRecord
	}
	if rec.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	// Clock-out may happen at a different location than clock-in; it is
	// verified independently.
	loc, overrideBy, err := a.verifyLocation(ctx, actor, emp, req.LocationID, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	proofURL := req.ProofPhotoURL
	if req.File != nil && req.FileHeader != nil {
		url, err := a.fileService.UploadProofPhoto(ctx, req.StaffID, req.File, req.FileHeader)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload attendance proof: %w", err)
		}
		proofURL = &url
	}

	upd := attendance.ClockOutUpdate{
		ClockOut:   now,
		LocationID: loc.ID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		ProofURL:   proofURL,
		OverrideBy: overrideBy,
	}
	if err := a.AttendanceRepository.SetClockOut(ctx, rec.ID, upd); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance record: %w", err)
	}

	return toResponse(updated), nil
}

func (a *AttendanceServiceImpl) markFlag(ctx context.Context, actor approval.Actor, attendanceID string, flag attendance.Flag) (attendance.AttendanceResponse, error) {
	if !actor.Role.HasFieldLeadershipPrivileges() {
		return attendance.AttendanceResponse{}, attendance.ErrNotAuthorizedToFlag
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	raised, err := a.AttendanceRepository.RaiseFlag(ctx, rec.ID, flag)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to raise flag: %w", err)
	}
	if !raised {
		// Already raised, nothing to change.
		return toResponse(rec), nil
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance record: %w", err)
	}
	return toResponse(updated), nil
}

// MarkOvertime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkOvertime(ctx context.Context, actor approval.Actor, attendanceID string) (attendance.AttendanceResponse, error) {
	return a.markFlag(ctx, actor, attendanceID, attendance.FlagOvertime)
}

// MarkDoubleDuty implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkDoubleDuty(ctx context.Context, actor approval.Actor, attendanceID string) (attendance.AttendanceResponse, error) {
	return a.markFlag(ctx, actor, attendanceID, attendance.FlagDoubleDuty)
}

// subjectFor builds the routing subject for the record's staff member,
// including the supervisor's manager link when the record was submitted
// under a supervisor.
func (a *AttendanceServiceImpl) subjectFor(ctx context.Context, rec attendance.Attendance) (approval.Subject, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, rec.StaffID)
	if err != nil {
		return approval.Subject{}, err
	}

	sub := approval.Subject{
		StaffID:    emp.ID,
		Role:       emp.Role,
		Department: emp.Department,
		ManagerID:  emp.ManagerID,
	}

	if rec.SupervisorID != nil {
		sup, err := a.EmployeeRepository.GetByID(ctx, *rec.SupervisorID)
		if err == nil {
			sub.SupervisorManagerID = sup.ManagerID
		}
	}

	return sub, nil
}

func flagStatus(rec attendance.Attendance, flag attendance.Flag) *attendance.ApprovalStatus {
	if flag == attendance.FlagOvertime {
		return rec.OvertimeStatus
	}
	return rec.DoubleDutyStatus
}

func (a *AttendanceServiceImpl) decideFlag(ctx context.Context, actor approval.Actor, attendanceID string, flag attendance.Flag, target attendance.ApprovalStatus, reason *string) (attendance.AttendanceResponse, error) {
	rec, err := a.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if flagStatus(rec, flag) == nil {
		return attendance.AttendanceResponse{}, attendance.ErrFlagNotRaised
	}

	sub, err := a.subjectFor(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve approval subject: %w", err)
	}
	if !approval.CanApprove(sub, actor) {
		return attendance.AttendanceResponse{}, approval.ErrNotAuthorizedToApprove
	}

	ok, err := a.AttendanceRepository.SetFlagStatus(ctx, rec.ID, flag, target, actor.ID, reason)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set flag status: %w", err)
	}

	current, err := a.AttendanceRepository.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance record: %w", err)
	}

	if !ok {
		cur := flagStatus(current, flag)
		if cur != nil && *cur == target {
			// Same decision landed twice; report the settled state.
			return toResponse(current), nil
		}
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}

	return toResponse(current), nil
}

// ApproveOvertime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApproveOvertime(ctx context.Context, actor approval.Actor, attendanceID string) (attendance.AttendanceResponse, error) {
	return a.decideFlag(ctx, actor, attendanceID, attendance.FlagOvertime, attendance.ApprovalApproved, nil)
}

// RejectOvertime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RejectOvertime(ctx context.Context, actor approval.Actor, req attendance.RejectRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return a.decideFlag(ctx, actor, req.ID, attendance.FlagOvertime, attendance.ApprovalRejected, &req.Reason)
}

// ApproveDoubleDuty implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApproveDoubleDuty(ctx context.Context, actor approval.Actor, attendanceID string) (attendance.AttendanceResponse, error) {
	return a.decideFlag(ctx, actor, attendanceID, attendance.FlagDoubleDuty, attendance.ApprovalApproved, nil)
}

// RejectDoubleDuty implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RejectDoubleDuty(ctx context.Context, actor approval.Actor, req attendance.RejectRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return a.decideFlag(ctx, actor, req.ID, attendance.FlagDoubleDuty, attendance.ApprovalRejected, &req.Reason)
}

func (a *AttendanceServiceImpl) decideRecord(ctx context.Context, actor approval.Actor, attendanceID string, target attendance.ApprovalStatus, reason *string) (attendance.AttendanceResponse, error) {
	rec, err := a.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	sub, err := a.subjectFor(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve approval subject: %w", err)
	}
	if !approval.CanApprove(sub, actor) {
		return attendance.AttendanceResponse{}, approval.ErrNotAuthorizedToApprove
	}

	ok, err := a.AttendanceRepository.SetApprovalStatus(ctx, rec.ID, target, actor.ID, reason)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set approval status: %w", err)
	}

	current, err := a.AttendanceRepository.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance record: %w", err)
	}

	if !ok {
		if current.ApprovalStatus == target {
			return toResponse(current), nil
		}
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}

	return toResponse(current), nil
}

// Approve implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Approve(ctx context.Context, actor approval.Actor, attendanceID string) (attendance.AttendanceResponse, error) {
	return a.decideRecord(ctx, actor, attendanceID, attendance.ApprovalApproved, nil)
}

// Reject implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Reject(ctx context.Context, actor approval.Actor, req attendance.RejectRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return a.decideRecord(ctx, actor, req.ID, attendance.ApprovalRejected, &req.Reason)
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(rec), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Attendances = append(resp.Attendances, toResponse(rec))
	}
	return resp, nil
}

// MyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MyAttendance(ctx context.Context, actor approval.Actor, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	filter.StaffID = &actor.ID
	filter.SupervisorID = nil
	return a.List(ctx, filter)
}
