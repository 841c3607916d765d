package handler

import (
	"encoding/json"
	"net/http"

	"go-booking-platform/internal/converter"
	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/delivery/http/middleware"
	"go-booking-platform/internal/usecase"
	"go-booking-platform/pkg/response"
	"go-booking-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.Create(r.Context(), ownerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to create staff")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Staff created", converter.StaffToResponse(staff))
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	staff, err := h.staffUsecase.ListOwned(r.Context(), ownerID)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to list staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved", converter.StaffsToResponses(staff))
}

func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	staffID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid staff ID")
		return
	}

	var req dto.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.Update(r.Context(), ownerID, staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound, usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		default:
			response.InternalServerError(w, "Failed to update staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff updated", converter.StaffToResponse(staff))
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	staffID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid staff ID")
		return
	}

	if err := h.staffUsecase.Delete(r.Context(), ownerID, staffID); err != nil {
		switch err {
		case usecase.ErrBusinessNotFound, usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		default:
			response.InternalServerError(w, "Failed to delete staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff deleted", nil)
}
