package leave

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/leave"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

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
