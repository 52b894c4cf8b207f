package handler

import (
	"encoding/json"
	"net/http"

	"benihealth/internal/delivery/dto"
	"benihealth/internal/usecase"
	"benihealth/pkg/response"
	"benihealth/pkg/validator"

	"github.com/gorilla/mux"
)

// maxBulkUploadSize caps enrollment file uploads at 10 MB.
const maxBulkUploadSize = 10 << 20

type EnrolleeHandler struct {
	enrolleeUsecase usecase.EnrolleeUsecase
	validator       *validator.CustomValidator
}

func NewEnrolleeHandler(enrolleeUsecase usecase.EnrolleeUsecase, validator *validator.CustomValidator) *EnrolleeHandler {
	return &EnrolleeHandler{
		enrolleeUsecase: enrolleeUsecase,
		validator:       validator,
	}
}

// ListEnrollees handles listing the calling employer's enrollees
// @Summary List enrollees
// @Description List all enrollees belonging to the authenticated employer
// @Tags Enrollees
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /enrollees [get]
func (h *EnrolleeHandler) ListEnrollees(w http.ResponseWriter, r *http.Request) {
	enrollees, err := h.enrolleeUsecase.List(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrEmployerProfileNotFound:
			response.NotFound(w, "Employer profile not found")
		default:
			response.InternalServerError(w, "Failed to list enrollees")
		}
		return
	}

	response.Success(w, http.StatusOK, "Enrollees retrieved successfully", enrollees)
}

// CreateEnrollee handles single enrollee creation
// @Summary Create enrollee
// @Description Enroll a single individual under the authenticated employer
// @Tags Enrollees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrolleeRequest true "Create Enrollee Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /enrollees [post]
func (h *EnrolleeHandler) CreateEnrollee(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEnrolleeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	enrollee, err := h.enrolleeUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPlanNotFound:
			response.Error(w, http.StatusBadRequest, "Plan not found", nil)
		case usecase.ErrEnrolleePhoneExists, usecase.ErrEnrolleeIDExists:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case usecase.ErrEmployerProfileNotFound:
			response.NotFound(w, "Employer profile not found")
		default:
			response.InternalServerError(w, "Failed to create enrollee")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Enrollee created successfully", enrollee)
}

// GetEnrollee handles fetching a single enrollee
// @Summary Get enrollee
// @Description Get one enrollee by its external enrollee ID
// @Tags Enrollees
// @Security BearerAuth
// @Produce json
// @Param enrollee_id path string true "Enrollee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enrollees/{enrollee_id} [get]
func (h *EnrolleeHandler) GetEnrollee(w http.ResponseWriter, r *http.Request) {
	enrolleeID := mux.Vars(r)["enrollee_id"]

	enrollee, err := h.enrolleeUsecase.Get(r.Context(), enrolleeID)
	if err != nil {
		h.writeEnrolleeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollee retrieved successfully", enrollee)
}

// UpdateEnrollee handles enrollee updates
// @Summary Update enrollee
// @Description Update an enrollee's details or coverage
// @Tags Enrollees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param enrollee_id path string true "Enrollee ID"
// @Param request body dto.UpdateEnrolleeRequest true "Update Enrollee Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enrollees/{enrollee_id} [put]
func (h *EnrolleeHandler) UpdateEnrollee(w http.ResponseWriter, r *http.Request) {
	enrolleeID := mux.Vars(r)["enrollee_id"]

	var req dto.UpdateEnrolleeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	enrollee, err := h.enrolleeUsecase.Update(r.Context(), enrolleeID, &req)
	if err != nil {
		h.writeEnrolleeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollee updated successfully", enrollee)
}

// TerminateEnrollee handles coverage termination
// @Summary Terminate enrollee
// @Description Set an enrollee's coverage status to TERMINATED; the record is kept
// @Tags Enrollees
// @Security BearerAuth
// @Produce json
// @Param enrollee_id path string true "Enrollee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enrollees/{enrollee_id} [delete]
func (h *EnrolleeHandler) TerminateEnrollee(w http.ResponseWriter, r *http.Request) {
	enrolleeID := mux.Vars(r)["enrollee_id"]

	if err := h.enrolleeUsecase.Terminate(r.Context(), enrolleeID); err != nil {
		h.writeEnrolleeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollee terminated successfully", nil)
}

// BulkImportEnrollees handles CSV/Excel enrollment file uploads
// @Summary Bulk import enrollees
// @Description Upload a CSV or Excel file of enrollees; returns per-row results
// @Tags Enrollees
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Enrollment file (.csv or .xlsx)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /enrollees/bulk [post]
func (h *EnrolleeHandler) BulkImportEnrollees(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxBulkUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "File is required", nil)
		return
	}
	defer file.Close()

	result, err := h.enrolleeUsecase.BulkImport(r.Context(), header.Filename, file)
	if err != nil {
		switch err {
		case usecase.ErrMissingColumns:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrEmployerProfileNotFound:
			response.NotFound(w, "Employer profile not found")
		default:
			response.Error(w, http.StatusBadRequest, "Failed to read enrollment file", nil)
		}
		return
	}

	response.Success(w, http.StatusOK, "Bulk import completed", result)
}

func (h *EnrolleeHandler) writeEnrolleeError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrEnrolleeNotFound:
		response.NotFound(w, "Enrollee not found")
	case usecase.ErrEnrolleeNotOwned:
		response.Forbidden(w, "Enrollee does not belong to your company")
	case usecase.ErrEnrolleePhoneExists:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case usecase.ErrEmployerProfileNotFound:
		response.NotFound(w, "Employer profile not found")
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, "Failed to process enrollee")
	}
}
