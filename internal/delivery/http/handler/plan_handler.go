package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"benihealth/internal/delivery/dto"
	"benihealth/internal/usecase"
	"benihealth/pkg/response"
	"benihealth/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PlanHandler struct {
	planUsecase usecase.PlanUsecase
	validator   *validator.CustomValidator
}

func NewPlanHandler(planUsecase usecase.PlanUsecase, validator *validator.CustomValidator) *PlanHandler {
	return &PlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

// CreatePlan handles plan creation
// @Summary Create plan
// @Description Create a new insurance plan
// @Tags Plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Create Plan Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPlanCodeExists:
			response.Error(w, http.StatusConflict, "Plan code already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create plan")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Plan created successfully", plan)
}

// GetAllPlans handles listing plans
// @Summary List plans
// @Description List all insurance plans with pagination
// @Tags Plans
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /plans [get]
func (h *PlanHandler) GetAllPlans(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	plans, total, err := h.planUsecase.GetAll(r.Context(), limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to list plans")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, http.StatusOK, "Plans retrieved successfully", plans, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

// GetPlan handles fetching a single plan
// @Summary Get plan
// @Description Get one plan by ID
// @Tags Plans
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid plan ID", nil)
		return
	}

	plan, err := h.planUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPlanNotFound:
			response.NotFound(w, "Plan not found")
		default:
			response.InternalServerError(w, "Failed to get plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Plan retrieved successfully", plan)
}

// UpdatePlan handles plan updates
// @Summary Update plan
// @Description Update an existing insurance plan
// @Tags Plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body dto.UpdatePlanRequest true "Update Plan Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid plan ID", nil)
		return
	}

	var req dto.UpdatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPlanNotFound:
			response.NotFound(w, "Plan not found")
		default:
			response.InternalServerError(w, "Failed to update plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Plan updated successfully", plan)
}
