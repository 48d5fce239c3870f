package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/approval"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/assignment"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/attendance"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/dashboard"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/leave"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	assignment.AssignmentRepository
	leave.LeaveRepository
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	assignmentRepo assignment.AssignmentRepository,
	leaveRepo leave.LeaveRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		AssignmentRepository: assignmentRepo,
		LeaveRepository:      leaveRepo,
	}
}

// visibleStaff resolves which employees the actor's board may show,
// following the reporting chain downward.
func (d *DashboardServiceImpl) visibleStaff(ctx context.Context, actor approval.Actor) ([]employee.Employee, error) {
	switch {
	case actor.Role.HasFullControl():
		return d.EmployeeRepository.ListActive(ctx, nil)

	case actor.Role == role.RoleGeneralManager:
		departments := actor.Departments
		if len(departments) == 0 && actor.Department != nil {
			departments = []string{*actor.Department}
		}
		seen := make(map[string]bool)
		var out []employee.Employee
		for _, dept := range departments {
			dept := dept
			emps, err := d.EmployeeRepository.ListActive(ctx, &dept)
			if err != nil {
				return nil, fmt.Errorf("failed to list department employees: %w", err)
			}
			for _, emp := range emps {
				if !seen[emp.ID] {
					seen[emp.ID] = true
					out = append(out, emp)
				}
			}
		}
		return out, nil

	case actor.Role == role.RoleManager:
		reports, err := d.EmployeeRepository.ListByManager(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list direct reports: %w", err)
		}
		seen := make(map[string]bool)
		var out []employee.Employee
		for _, rep := range reports {
			if !seen[rep.ID] {
				seen[rep.ID] = true
				out = append(out, rep)
			}
			if rep.Role != role.RoleSupervisor {
				continue
			}
			// Staff assigned under a direct-report supervisor.
			assignments, err := d.AssignmentRepository.ListActiveBySupervisor(ctx, rep.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to list supervisor assignments: %w", err)
			}
			for _, a := range assignments {
				if seen[a.StaffID] {
					continue
				}
				staff, err := d.EmployeeRepository.GetByID(ctx, a.StaffID)
				if err != nil {
					continue
				}
				seen[staff.ID] = true
				out = append(out, staff)
			}
		}
		return out, nil

	case actor.Role == role.RoleSupervisor:
		self, err := d.EmployeeRepository.GetByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		assignments, err := d.AssignmentRepository.ListActiveBySupervisor(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list supervisor assignments: %w", err)
		}
		seen := map[string]bool{self.ID: true}
		out := []employee.Employee{self}
		for _, a := range assignments {
			if seen[a.StaffID] {
				continue
			}
			staff, err := d.EmployeeRepository.GetByID(ctx, a.StaffID)
			if err != nil {
				continue
			}
			seen[staff.ID] = true
			out = append(out, staff)
		}
		return out, nil

	default:
		self, err := d.EmployeeRepository.GetByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		return []employee.Employee{self}, nil
	}
}

func matchesDept(emp employee.Employee, dept *string) bool {
	if dept == nil {
		return true
	}
	return emp.Department != nil && *emp.Department == *dept
}

// DailyBoard implements dashboard.DashboardService.
func (d *DashboardServiceImpl) DailyBoard(ctx context.Context, actor approval.Actor, filter dashboard.Filter) (dashboard.DailyBoardResponse, error) {
	if err := filter.Validate(); err != nil {
		return dashboard.DailyBoardResponse{}, err
	}

	day := time.Now().UTC().Truncate(24 * time.Hour)
	if filter.Date != "" {
		day, _ = time.Parse("2006-01-02", filter.Date)
	}

	staff, err := d.visibleStaff(ctx, actor)
	if err != nil {
		return dashboard.DailyBoardResponse{}, err
	}

	staffIDs := make([]string, 0, len(staff))
	for _, emp := range staff {
		staffIDs = append(staffIDs, emp.ID)
	}

	onLeave := make(map[string]bool)
	if len(staffIDs) > 0 {
		approved, err := d.LeaveRepository.ListApprovedCovering(ctx, staffIDs, day)
		if err != nil {
			return dashboard.DailyBoardResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
		}
		for _, l := range approved {
			onLeave[l.StaffID] = true
		}
	}

	resp := dashboard.DailyBoardResponse{
		Date: day.Format("2006-01-02"),
		Rows: make([]dashboard.StaffRow, 0, len(staff)),
	}

	for _, emp := range staff {
		if !matchesDept(emp, filter.Department) {
			continue
		}

		rec, err := d.AttendanceRepository.GetByStaffAndDate(ctx, emp.ID, day)
		if err != nil {
			return dashboard.DailyBoardResponse{}, fmt.Errorf("failed to get attendance: %w", err)
		}

		if filter.LocationID != nil {
			if rec == nil || rec.LocationID == nil || *rec.LocationID != *filter.LocationID {
				continue
			}
		}

		status := attendance.DeriveDailyStatus(rec, onLeave[emp.ID])
		if filter.Status != nil && status != *filter.Status {
			continue
		}

		row := dashboard.StaffRow{
			StaffID:    emp.ID,
			StaffName:  emp.FullName,
			Role:       string(emp.Role),
			Department: emp.Department,
			Status:     status,
		}
		if rec != nil {
			row.LocationID = rec.LocationID
			row.LocationName = rec.LocationName
			row.ClockIn = formatTimePtr(rec.ClockIn)
			row.ClockOut = formatTimePtr(rec.ClockOut)
			row.LateMinutes = rec.LateMinutes
			row.Overtime = rec.Overtime
			row.DoubleDuty = rec.DoubleDuty
			row.PendingFlags = pendingFlags(rec)
		}

		resp.Rows = append(resp.Rows, row)
		resp.Summary.TotalStaff++
		if rec != nil && rec.ClockIn != nil && rec.ClockOut == nil {
			resp.Summary.MissingClockOut++
		}
		switch status {
		case attendance.StatusPresent:
			resp.Summary.Present++
		case attendance.StatusLate:
			resp.Summary.Late++
		case attendance.StatusOnLeave:
			resp.Summary.OnLeave++
		default:
			resp.Summary.Absent++
		}
	}

	pending, err := d.PendingApprovals(ctx, actor)
	if err != nil {
		return dashboard.DailyBoardResponse{}, err
	}
	resp.Summary.PendingApprovals = pending.TotalCount

	return resp, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("15:04")
	return &v
}

func pendingFlags(rec *attendance.Attendance) []string {
	var flags []string
	if rec.OvertimeStatus != nil && *rec.OvertimeStatus == attendance.ApprovalPending {
		flags = append(flags, string(attendance.FlagOvertime))
	}
	if rec.DoubleDutyStatus != nil && *rec.DoubleDutyStatus == attendance.ApprovalPending {
		flags = append(flags, string(attendance.FlagDoubleDuty))
	}
	return flags
}

// PendingApprovals implements dashboard.DashboardService.
func (d *DashboardServiceImpl) PendingApprovals(ctx context.Context, actor approval.Actor) (dashboard.PendingApprovalsResponse, error) {
	staff, err := d.visibleStaff(ctx, actor)
	if err != nil {
		return dashboard.PendingApprovalsResponse{}, err
	}

	byID := make(map[string]employee.Employee, len(staff))
	staffIDs := make([]string, 0, len(staff))
	for _, emp := range staff {
		byID[emp.ID] = emp
		staffIDs = append(staffIDs, emp.ID)
	}

	resp := dashboard.PendingApprovalsResponse{Items: []dashboard.PendingApprovalItem{}}
	if len(staffIDs) == 0 {
		return resp, nil
	}

	// Only items the actor is actually entitled to decide make the list.
	approvable := func(emp employee.Employee, supervisorID *string) bool {
		sub := approval.Subject{
			StaffID:    emp.ID,
			Role:       emp.Role,
			Department: emp.Department,
			ManagerID:  emp.ManagerID,
		}
		if supervisorID != nil {
			if sup, err := d.EmployeeRepository.GetByID(ctx, *supervisorID); err == nil {
				sub.SupervisorManagerID = sup.ManagerID
			}
		}
		return approval.CanApprove(sub, actor)
	}

	records, err := d.AttendanceRepository.ListPendingByStaff(ctx, staffIDs)
	if err != nil {
		return dashboard.PendingApprovalsResponse{}, fmt.Errorf("failed to list pending attendances: %w", err)
	}
	for _, rec := range records {
		emp, ok := byID[rec.StaffID]
		if !ok || !approvable(emp, rec.SupervisorID) {
			continue
		}
		base := dashboard.PendingApprovalItem{
			ReferenceID: rec.ID,
			StaffID:     emp.ID,
			StaffName:   emp.FullName,
			Department:  emp.Department,
			SubmittedAt: rec.CreatedAt.Format(time.RFC3339),
		}
		if rec.ApprovalStatus == attendance.ApprovalPending && rec.ClockIn != nil {
			item := base
			item.Kind = "attendance"
			item.Detail = rec.Status
			resp.Items = append(resp.Items, item)
		}
		for _, flag := range pendingFlags(&rec) {
			item := base
			item.Kind = flag
			resp.Items = append(resp.Items, item)
		}
	}

	leaves, err := d.LeaveRepository.ListPendingByStaff(ctx, staffIDs)
	if err != nil {
		return dashboard.PendingApprovalsResponse{}, fmt.Errorf("failed to list pending leaves: %w", err)
	}
	for _, l := range leaves {
		emp, ok := byID[l.StaffID]
		if !ok || !approvable(emp, l.SupervisorID) {
			continue
		}
		resp.Items = append(resp.Items, dashboard.PendingApprovalItem{
			Kind:        "leave",
			ReferenceID: l.ID,
			StaffID:     emp.ID,
			StaffName:   emp.FullName,
			Department:  emp.Department,
			SubmittedAt: l.CreatedAt.Format(time.RFC3339),
			Detail:      l.LeaveType,
		})
	}

	resp.TotalCount = len(resp.Items)
	return resp, nil
}
