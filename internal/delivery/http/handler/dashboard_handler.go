package handler

import (
	"net/http"

	"benihealth/internal/usecase"
	"benihealth/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// EmployerDashboard handles the employer landing view
// @Summary Employer dashboard
// @Description Company overview with enrollee count for the authenticated employer
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dashboard/employer [get]
func (h *DashboardHandler) EmployerDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.EmployerDashboard(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrEmployerProfileNotFound, usecase.ErrProfileNotFound:
			response.NotFound(w, "Employer profile not found")
		default:
			response.InternalServerError(w, "Failed to load dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// EmployeeDashboard handles the employee landing view
// @Summary Employee dashboard
// @Description Employment overview for the authenticated employee
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dashboard/employee [get]
func (h *DashboardHandler) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.EmployeeDashboard(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrEmployeeProfileNotFound, usecase.ErrProfileNotFound:
			response.NotFound(w, "Employee profile not found")
		default:
			response.InternalServerError(w, "Failed to load dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
