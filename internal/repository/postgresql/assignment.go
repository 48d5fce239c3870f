package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/assignment"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	a.id, a.staff_id, a.supervisor_id, a.location_id, a.active, a.created_at, a.updated_at,
	s.full_name, v.full_name, l.name
`

const assignmentJoins = `
	FROM assignments a
	LEFT JOIN employees s ON s.id = a.staff_id
	LEFT JOIN employees v ON v.id = a.supervisor_id
	LEFT JOIN locations l ON l.id = a.location_id
`

func scanAssignment(row pgx.Row) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := row.Scan(
		&a.ID, &a.StaffID, &a.SupervisorID, &a.LocationID, &a.Active,
		&a.CreatedAt, &a.UpdatedAt, &a.StaffName, &a.SupervisorName, &a.LocationName,
	)
	return a, err
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (staff_id, supervisor_id, location_id, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id string
	if err := q.QueryRow(ctx, query, a.StaffID, a.SupervisorID, a.LocationID, a.Active).Scan(&id); err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	query = `SELECT ` + assignmentColumns + assignmentJoins + ` WHERE a.id = $1`
	created, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to load assignment: %w", err)
	}
	return created, nil
}

// GetActive implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetActive(ctx context.Context, staffID, locationID string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.staff_id = $1 AND a.location_id = $2 AND a.active = TRUE
		ORDER BY a.created_at DESC
		LIMIT 1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, staffID, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get active assignment: %w", err)
	}
	return a, nil
}

func (r *assignmentRepositoryImpl) queryAssignments(ctx context.Context, query string, args ...interface{}) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListActiveByStaff implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListActiveByStaff(ctx context.Context, staffID string) ([]assignment.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.staff_id = $1 AND a.active = TRUE
		ORDER BY a.created_at DESC
	`
	return r.queryAssignments(ctx, query, staffID)
}

// ListActiveBySupervisor implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListActiveBySupervisor(ctx context.Context, supervisorID string) ([]assignment.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.supervisor_id = $1 AND a.active = TRUE
		ORDER BY a.created_at DESC
	`
	return r.queryAssignments(ctx, query, supervisorID)
}

// ListActive implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListActive(ctx context.Context) ([]assignment.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.active = TRUE
		ORDER BY a.created_at DESC
	`
	return r.queryAssignments(ctx, query)
}

// Deactivate implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to deactivate assignment: %w", err)
	}
	return nil
}
