package dashboard

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/assignment"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/attendance"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/leave"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.records {
		if existing.StaffID == att.StaffID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
	}
	f.seq++
	att.ID = fmt.Sprintf("att-%d", f.seq)
	att.CreatedAt = time.Now()
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.StaffID == staffID && rec.Date.Equal(date) {
			rec := rec
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetClockOut(ctx context.Context, id string, upd attendance.ClockOutUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	if rec.ClockOut != nil {
		return attendance.ErrAlreadyClockedOut
	}
	out := upd.ClockOut
	rec.ClockOut = &out
	rec.ClockOutLocationID = &upd.LocationID
	rec.ClockOutLatitude = &upd.Latitude
	rec.ClockOutLongitude = &upd.Longitude
	rec.ClockOutProofURL = upd.ProofURL
	if upd.OverrideBy != nil {
		rec.OverrideBy = upd.OverrideBy
	}
	f.records[id] = rec
	return nil
}

func (f *fakeAttendanceRepo) RaiseFlag(ctx context.Context, id string, flag attendance.Flag) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return false, attendance.ErrAttendanceNotFound
	}
	pending := attendance.ApprovalPending
	if flag == attendance.FlagOvertime {
		if rec.Overtime {
			return false, nil
		}
		rec.Overtime = true
		rec.OvertimeStatus = &pending
	} else {
		if rec.DoubleDuty {
			return false, nil
		}
		rec.DoubleDuty = true
		rec.DoubleDutyStatus = &pending
	}
	f.records[id] = rec
	return true, nil
}

func (f *fakeAttendanceRepo) SetFlagStatus(ctx context.Context, id string, flag attendance.Flag, status attendance.ApprovalStatus, actorID string, reason *string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return false, attendance.ErrAttendanceNotFound
	}
	var cur *attendance.ApprovalStatus
	if flag == attendance.FlagOvertime {
		cur = rec.OvertimeStatus
	} else {
		cur = rec.DoubleDutyStatus
	}
	if cur == nil || *cur != attendance.ApprovalPending {
		return false, nil
	}
	st := status
	if flag == attendance.FlagOvertime {
		rec.OvertimeStatus = &st
		rec.OvertimeReason = reason
	} else {
		rec.DoubleDutyStatus = &st
		rec.DoubleDutyReason = reason
	}
	f.records[id] = rec
	return true, nil
}

func (f *fakeAttendanceRepo) SetApprovalStatus(ctx context.Context, id string, status attendance.ApprovalStatus, actorID string, reason *string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return false, attendance.ErrAttendanceNotFound
	}
	if rec.ApprovalStatus != attendance.ApprovalPending {
		return false, nil
	}
	now := time.Now()
	rec.ApprovalStatus = status
	rec.ApprovedBy = &actorID
	rec.ApprovedAt = &now
	rec.RejectionReason = reason
	f.records[id] = rec
	return true, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, rec := range f.records {
		if filter.StaffID != nil && rec.StaffID != *filter.StaffID {
			continue
		}
		if filter.SupervisorID != nil && (rec.SupervisorID == nil || *rec.SupervisorID != *filter.SupervisorID) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.Open() && rec.Date.Before(day) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListPendingByStaff(ctx context.Context, staffIDs []string) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		ids[id] = true
	}
	pending := attendance.ApprovalPending
	var out []attendance.Attendance
	for _, rec := range f.records {
		if !ids[rec.StaffID] {
			continue
		}
		if rec.ApprovalStatus == pending ||
			(rec.OvertimeStatus != nil && *rec.OvertimeStatus == pending) ||
			(rec.DoubleDutyStatus != nil && *rec.DoubleDutyStatus == pending) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CreateAbsences(ctx context.Context, records []attendance.Attendance) error {
	for _, rec := range records {
		if _, err := f.Create(ctx, rec); err != nil && err != attendance.ErrAlreadyClockedIn {
			return err
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) add(emp employee.Employee) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees[emp.ID] = emp
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.add(emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	f.add(emp)
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Active = false
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) ListByRole(ctx context.Context, r role.Role, department *string) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Employee
	for _, emp := range f.employees {
		if !emp.Active || emp.Role != r {
			continue
		}
		if department != nil && (emp.Department == nil || *emp.Department != *department) {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Active && emp.ManagerID != nil && *emp.ManagerID == managerID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, department *string) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Employee
	for _, emp := range f.employees {
		if !emp.Active {
			continue
		}
		if department != nil && (emp.Department == nil || *emp.Department != *department) {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	mu          sync.Mutex
	assignments []assignment.Assignment
}

func (f *fakeAssignmentRepo) add(a assignment.Assignment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments = append(f.assignments, a)
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	f.add(a)
	return a, nil
}

func (f *fakeAssignmentRepo) GetActive(ctx context.Context, staffID, locationID string) (assignment.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var found *assignment.Assignment
	for i := range f.assignments {
		a := f.assignments[i]
		if !a.Active || a.StaffID != staffID || a.LocationID != locationID {
			continue
		}
		if found == nil || a.CreatedAt.After(found.CreatedAt) {
			found = &f.assignments[i]
		}
	}
	if found == nil {
		return assignment.Assignment{}, assignment.ErrAssignmentNotFound
	}
	return *found, nil
}

func (f *fakeAssignmentRepo) ListActiveByStaff(ctx context.Context, staffID string) ([]assignment.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []assignment.Assignment
	for _, a := range f.assignments {
		if a.Active && a.StaffID == staffID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) ListActiveBySupervisor(ctx context.Context, supervisorID string) ([]assignment.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []assignment.Assignment
	for _, a := range f.assignments {
		if a.Active && a.SupervisorID == supervisorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) ListActive(ctx context.Context) ([]assignment.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []assignment.Assignment
	for _, a := range f.assignments {
		if a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Deactivate(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			f.assignments[i].Active = false
			return nil
		}
	}
	return assignment.ErrAssignmentNotFound
}

type fakeLeaveRepo struct {
	mu     sync.Mutex
	seq    int
	leaves map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	req.ID = fmt.Sprintf("leave-%d", f.seq)
	req.CreatedAt = time.Now()
	f.leaves[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) SetStatus(ctx context.Context, id string, status leave.LeaveStatus, actorID string, reason *string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.leaves[id]
	if !ok {
		return false, leave.ErrLeaveRequestNotFound
	}
	if req.Status != leave.LeaveStatusPending {
		return false, nil
	}
	now := time.Now()
	req.Status = status
	req.ApprovedBy = &actorID
	req.ApprovedAt = &now
	req.RejectionReason = reason
	f.leaves[id] = req
	return true, nil
}

func (f *fakeLeaveRepo) HasApprovedLeaveOn(ctx context.Context, staffID string, day time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, req := range f.leaves {
		if req.StaffID == staffID && req.Status == leave.LeaveStatusApproved && req.Covers(day) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, staffID string, start, end time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, req := range f.leaves {
		if req.StaffID != staffID || req.Status == leave.LeaveStatusRejected {
			continue
		}
		if !start.After(req.EndDate) && !end.Before(req.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.LeaveRequest
	for _, req := range f.leaves {
		if filter.StaffID != nil && req.StaffID != *filter.StaffID {
			continue
		}
		if filter.Status != nil && string(req.Status) != *filter.Status {
			continue
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) ListApprovedCovering(ctx context.Context, staffIDs []string, day time.Time) ([]leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		ids[id] = true
	}
	var out []leave.LeaveRequest
	for _, req := range f.leaves {
		if ids[req.StaffID] && req.Status == leave.LeaveStatusApproved && req.Covers(day) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListPendingByStaff(ctx context.Context, staffIDs []string) ([]leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		ids[id] = true
	}
	var out []leave.LeaveRequest
	for _, req := range f.leaves {
		if ids[req.StaffID] && req.Status == leave.LeaveStatusPending {
			out = append(out, req)
		}
	}
	return out, nil
}

