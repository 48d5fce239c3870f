package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/attendance"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.staff_id, a.supervisor_id, a.date,
	a.location_id, a.clock_in, a.clock_in_latitude, a.clock_in_longitude, a.clock_in_proof_url,
	a.clock_out_location_id, a.clock_out, a.clock_out_latitude, a.clock_out_longitude, a.clock_out_proof_url,
	a.status, a.late_minutes,
	a.approval_status, a.approved_by, a.approved_at, a.rejection_reason,
	a.overtime, a.overtime_status, a.overtime_reason,
	a.double_duty, a.double_duty_status, a.double_duty_reason,
	a.override_by, a.created_at, a.updated_at,
	e.full_name, l.name
`

const attendanceJoins = `
	FROM attendances a
	LEFT JOIN employees e ON e.id = a.staff_id
	LEFT JOIN locations l ON l.id = a.location_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var rec attendance.Attendance
	var approvalStatus string
	var overtimeStatus, doubleDutyStatus *string
	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.SupervisorID, &rec.Date,
		&rec.LocationID, &rec.ClockIn, &rec.ClockInLatitude, &rec.ClockInLongitude, &rec.ClockInProofURL,
		&rec.ClockOutLocationID, &rec.ClockOut, &rec.ClockOutLatitude, &rec.ClockOutLongitude, &rec.ClockOutProofURL,
		&rec.Status, &rec.LateMinutes,
		&approvalStatus, &rec.ApprovedBy, &rec.ApprovedAt, &rec.RejectionReason,
		&rec.Overtime, &overtimeStatus, &rec.OvertimeReason,
		&rec.DoubleDuty, &doubleDutyStatus, &rec.DoubleDutyReason,
		&rec.OverrideBy, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.StaffName, &rec.LocationName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	rec.ApprovalStatus = attendance.ApprovalStatus(approvalStatus)
	if overtimeStatus != nil {
		s := attendance.ApprovalStatus(*overtimeStatus)
		rec.OvertimeStatus = &s
	}
	if doubleDutyStatus != nil {
		s := attendance.ApprovalStatus(*doubleDutyStatus)
		rec.DoubleDutyStatus = &s
	}
	return rec, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			staff_id, supervisor_id, date, location_id,
			clock_in, clock_in_latitude, clock_in_longitude, clock_in_proof_url,
			status, late_minutes, approval_status, override_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		att.StaffID, att.SupervisorID, att.Date, att.LocationID,
		att.ClockIn, att.ClockInLatitude, att.ClockInLongitude, att.ClockInProofURL,
		att.Status, att.LateMinutes, string(att.ApprovalStatus), att.OverrideBy,
	).Scan(&id)
	if err != nil {
		// One record per staff per day, enforced by a unique constraint.
		if strings.Contains(err.Error(), "attendances_staff_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return rec, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.staff_id = $1 AND a.date = $2`

	rec, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by staff and date: %w", err)
	}
	return &rec, nil
}

// SetClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id string, upd attendance.ClockOutUpdate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $1, clock_out_location_id = $2,
			clock_out_latitude = $3, clock_out_longitude = $4,
			clock_out_proof_url = $5,
			override_by = COALESCE($6, override_by),
			updated_at = NOW()
		WHERE id = $7 AND clock_out IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		upd.ClockOut, upd.LocationID, upd.Latitude, upd.Longitude,
		upd.ProofURL, upd.OverrideBy, id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyClockedOut
		}
		return fmt.Errorf("failed to set clock out: %w", err)
	}
	return nil
}

func flagColumns(flag attendance.Flag) (string, string, string) {
	if flag == attendance.FlagOvertime {
		return "overtime", "overtime_status", "overtime_reason"
	}
	return "double_duty", "double_duty_status", "double_duty_reason"
}

// RaiseFlag implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) RaiseFlag(ctx context.Context, id string, flag attendance.Flag) (bool, error) {
	q := GetQuerier(ctx, r.db)

	flagCol, statusCol, _ := flagColumns(flag)
	query := fmt.Sprintf(`
		UPDATE attendances
		SET %s = TRUE, %s = $1, updated_at = NOW()
		WHERE id = $2 AND %s = FALSE
		RETURNING id
	`, flagCol, statusCol, flagCol)

	var updatedID string
	err := q.QueryRow(ctx, query, string(attendance.ApprovalPending), id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to raise flag: %w", err)
	}
	return true, nil
}

// SetFlagStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetFlagStatus(ctx context.Context, id string, flag attendance.Flag, status attendance.ApprovalStatus, actorID string, reason *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	_, statusCol, reasonCol := flagColumns(flag)
	query := fmt.Sprintf(`
		UPDATE attendances
		SET %s = $1, %s = $2, approved_by = $3, approved_at = NOW(), updated_at = NOW()
		WHERE id = $4 AND %s = $5
		RETURNING id
	`, statusCol, reasonCol, statusCol)

	var updatedID string
	err := q.QueryRow(ctx, query,
		string(status), reason, actorID, id, string(attendance.ApprovalPending),
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to set flag status: %w", err)
	}
	return true, nil
}

// SetApprovalStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetApprovalStatus(ctx context.Context, id string, status attendance.ApprovalStatus, actorID string, reason *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET approval_status = $1, approved_by = $2, approved_at = NOW(),
			rejection_reason = $3, updated_at = NOW()
		WHERE id = $4 AND approval_status = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		string(status), actorID, reason, id, string(attendance.ApprovalPending),
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to set approval status: %w", err)
	}
	return true, nil
}

func (r *attendanceRepositoryImpl) queryAttendances(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	add := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.StaffID != nil && *filter.StaffID != "" {
		add("a.staff_id = $%d", *filter.StaffID)
	}
	if filter.SupervisorID != nil && *filter.SupervisorID != "" {
		add("a.supervisor_id = $%d", *filter.SupervisorID)
	}
	if filter.Date != nil && *filter.Date != "" {
		add("a.date = $%d", *filter.Date)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		add("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		add("a.date <= $%d", *filter.EndDate)
	}
	if filter.Status != nil && *filter.Status != "" {
		add("a.status = $%d", *filter.Status)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		` + where + fmt.Sprintf(`
		ORDER BY a.date DESC, a.clock_in DESC
		LIMIT $%d OFFSET $%d
	`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	records, err := r.queryAttendances(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	return records, total, nil
}

// ListOpenBefore implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.clock_in IS NOT NULL AND a.clock_out IS NULL AND a.date < $1
		ORDER BY a.date ASC
	`
	return r.queryAttendances(ctx, query, day)
}

// ListPendingByStaff implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListPendingByStaff(ctx context.Context, staffIDs []string) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.staff_id = ANY($1)
			AND (a.approval_status = 'pending'
				OR a.overtime_status = 'pending'
				OR a.double_duty_status = 'pending')
		ORDER BY a.created_at ASC
	`
	return r.queryAttendances(ctx, query, staffIDs)
}

// CreateAbsences implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CreateAbsences(ctx context.Context, records []attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (staff_id, supervisor_id, date, status, approval_status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (staff_id, date) DO NOTHING
	`

	for _, rec := range records {
		if _, err := q.Exec(ctx, query,
			rec.StaffID, rec.SupervisorID, rec.Date, rec.Status, string(rec.ApprovalStatus),
		); err != nil {
			return fmt.Errorf("failed to insert absence for %s: %w", rec.StaffID, err)
		}
	}
	return nil
}
