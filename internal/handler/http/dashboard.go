package http

import (
	"net/http"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/dashboard"
	"github.com/utiliops/fieldforce-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	DailyBoard(w http.ResponseWriter, r *http.Request)
	PendingApprovals(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// DailyBoard implements DashboardHandler.
func (h *dashboardHandlerImpl) DailyBoard(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	filter := dashboard.Filter{
		Date: r.URL.Query().Get("date"),
	}

	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}

	if locationID := r.URL.Query().Get("location_id"); locationID != "" {
		filter.LocationID = &locationID
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.DailyBoard(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PendingApprovals implements DashboardHandler.
func (h *dashboardHandlerImpl) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.dashboardService.PendingApprovals(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
