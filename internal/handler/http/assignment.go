package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/assignment"
	"github.com/utiliops/fieldforce-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	ListBySupervisor(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &assignmentHandlerImpl{
		assignmentService: assignmentService,
	}
}

// Assign implements AssignmentHandler.
func (h *assignmentHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.assignmentService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment created", result)
}

// Unassign implements AssignmentHandler.
func (h *assignmentHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.assignmentService.Unassign(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deactivated", nil)
}

// ListByStaff implements AssignmentHandler.
func (h *assignmentHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.assignmentService.ListByStaff(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListBySupervisor implements AssignmentHandler.
func (h *assignmentHandlerImpl) ListBySupervisor(w http.ResponseWriter, r *http.Request) {
	supervisorID := chi.URLParam(r, "supervisorID")
	if supervisorID == "" {
		response.BadRequest(w, "Supervisor ID is required", nil)
		return
	}

	result, err := h.assignmentService.ListBySupervisor(r.Context(), supervisorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
