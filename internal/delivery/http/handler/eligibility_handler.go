package handler

import (
	"encoding/json"
	"net/http"

	"benihealth/internal/delivery/dto"
	"benihealth/internal/usecase"
	"benihealth/pkg/response"
	"benihealth/pkg/validator"
)

type EligibilityHandler struct {
	eligibilityUsecase usecase.EligibilityUsecase
	validator          *validator.CustomValidator
}

func NewEligibilityHandler(eligibilityUsecase usecase.EligibilityUsecase, validator *validator.CustomValidator) *EligibilityHandler {
	return &EligibilityHandler{
		eligibilityUsecase: eligibilityUsecase,
		validator:          validator,
	}
}

// VerifyEnrollee handles point-of-care eligibility checks
// @Summary Verify enrollee eligibility
// @Description Look up an enrollee by any identifier and report coverage status and balance
// @Tags Providers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.VerifyEnrolleeRequest true "Verify Enrollee Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /providers/verify-enrollee [post]
func (h *EligibilityHandler) VerifyEnrollee(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyEnrolleeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.eligibilityUsecase.VerifyEnrollee(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSearchTermsRequired:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrEnrolleeNotFound:
			response.NotFound(w, "Enrollee not found")
		case usecase.ErrCoverageInactive:
			response.Error(w, http.StatusForbidden, "Enrollee coverage is not active", nil)
		default:
			response.InternalServerError(w, "Failed to verify enrollee")
		}
		return
	}

	response.Success(w, http.StatusOK, "Enrollee verified successfully", result)
}
