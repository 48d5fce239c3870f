package http

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/approval"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

// actorFromContext builds the acting identity from the verified token claims.
// The actor id is the employee id: routing and clocking rules compare
// employees, not login accounts.
func actorFromContext(ctx context.Context) (approval.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return approval.Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return approval.Actor{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)

	actor := approval.Actor{
		ID:   employeeID,
		Role: role.Normalize(roleStr),
	}

	if dept, ok := claims["department"].(string); ok && dept != "" {
		actor.Department = &dept
	}

	if depts, ok := claims["departments"].([]interface{}); ok {
		for _, d := range depts {
			if s, ok := d.(string); ok {
				actor.Departments = append(actor.Departments, s)
			}
		}
	}

	return actor, nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}
