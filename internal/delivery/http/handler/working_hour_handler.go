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

type WorkingHourHandler struct {
	workingHourUsecase usecase.WorkingHourUsecase
	validator          *validator.CustomValidator
}

func NewWorkingHourHandler(workingHourUsecase usecase.WorkingHourUsecase, validator *validator.CustomValidator) *WorkingHourHandler {
	return &WorkingHourHandler{
		workingHourUsecase: workingHourUsecase,
		validator:          validator,
	}
}

// Upsert replaces the weekly schedule rows included in the request
func (h *WorkingHourHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.UpsertWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hours, err := h.workingHourUsecase.Upsert(r.Context(), ownerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		case usecase.ErrInvalidTimeWindow:
			response.BadRequest(w, "End time must be after start time")
		case usecase.ErrInvalidTimezone:
			response.BadRequest(w, "Business timezone is invalid")
		default:
			response.InternalServerError(w, "Failed to update working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours updated", converter.WorkingHoursToResponses(hours))
}

func (h *WorkingHourHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	hours, err := h.workingHourUsecase.ListOwned(r.Context(), ownerID)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to list working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours retrieved", converter.WorkingHoursToResponses(hours))
}

func (h *WorkingHourHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	hourID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid working hour ID")
		return
	}

	if err := h.workingHourUsecase.Delete(r.Context(), ownerID, hourID); err != nil {
		switch err {
		case usecase.ErrBusinessNotFound, usecase.ErrWorkingHourNotFound:
			response.NotFound(w, "Working hour not found")
		default:
			response.InternalServerError(w, "Failed to delete working hour")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hour deleted", nil)
}
