package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/assignment"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/attendance"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/leave"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/location"
)

// AttendanceJobs houses the nightly attendance maintenance sweeps.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	assignmentRepo assignment.AssignmentRepository
	leaveRepo      leave.LeaveRepository
	locationRepo   location.LocationRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	assignmentRepo assignment.AssignmentRepository,
	leaveRepo leave.LeaveRepository,
	locationRepo location.LocationRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		assignmentRepo: assignmentRepo,
		leaveRepo:      leaveRepo,
		locationRepo:   locationRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("close_stale_open_sessions", 0, j.CloseStaleOpenSessions)
	scheduler.AddDailyJob("mark_absent_staff", 1, j.MarkAbsentStaff)
}

// CloseStaleOpenSessions force-closes records that were never clocked out
// before the day rolled over. The close happens at the location's shift end
// when known, otherwise at end of day.
func (j *AttendanceJobs) CloseStaleOpenSessions(ctx context.Context) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	open, err := j.attendanceRepo.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list open sessions: %w", err)
	}

	if len(open) == 0 {
		return nil
	}

	closedCount := 0
	for _, session := range open {
		closeAt := session.Date.Add(24*time.Hour - time.Minute)

		upd := attendance.ClockOutUpdate{
			ClockOut: closeAt,
		}
		if session.LocationID != nil {
			upd.LocationID = *session.LocationID
			if loc, lerr := j.locationRepo.GetByID(ctx, *session.LocationID); lerr == nil {
				upd.Latitude = loc.Latitude
				upd.Longitude = loc.Longitude
			}
		}

		if err := j.attendanceRepo.SetClockOut(ctx, session.ID, upd); err != nil {
			slog.Error("Cron: failed to close stale session",
				"attendance_id", session.ID,
				"staff_id", session.StaffID,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: closed stale open sessions", "count", closedCount)
	return nil
}

// MarkAbsentStaff writes synthetic records for assigned staff who have no
// record for yesterday: on_leave when an approved leave covers the day,
// absent otherwise.
func (j *AttendanceJobs) MarkAbsentStaff(ctx context.Context) error {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	assignments, err := j.assignmentRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active assignments: %w", err)
	}

	// An employee can hold several assignments; one record per staff per day.
	seen := make(map[string]bool)
	var absences []attendance.Attendance

	for _, a := range assignments {
		if seen[a.StaffID] {
			continue
		}
		seen[a.StaffID] = true

		existing, err := j.attendanceRepo.GetByStaffAndDate(ctx, a.StaffID, yesterday)
		if err != nil {
			slog.Error("Cron: failed to check attendance", "staff_id", a.StaffID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		status := attendance.StatusAbsent
		onLeave, err := j.leaveRepo.HasApprovedLeaveOn(ctx, a.StaffID, yesterday)
		if err == nil && onLeave {
			status = attendance.StatusOnLeave
		}

		supervisorID := a.SupervisorID
		absences = append(absences, attendance.Attendance{
			StaffID:        a.StaffID,
			SupervisorID:   &supervisorID,
			Date:           yesterday,
			Status:         status,
			ApprovalStatus: attendance.ApprovalApproved,
		})
	}

	if len(absences) == 0 {
		return nil
	}

	if err := j.attendanceRepo.CreateAbsences(ctx, absences); err != nil {
		return fmt.Errorf("failed to create absence records: %w", err)
	}

	slog.Info("Cron: marked absent staff", "count", len(absences))
	return nil
}
