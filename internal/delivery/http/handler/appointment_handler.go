package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go-booking-platform/internal/converter"
	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/delivery/http/middleware"
	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/usecase"
	"go-booking-platform/pkg/response"
	"go-booking-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// GetAvailableSlots computes bookable start times for a business, service
// and date. Public endpoint: customers browse availability before login.
func (h *AppointmentHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	req := dto.AvailableSlotsRequest{
		BusinessSlug: mux.Vars(r)["slug"],
		ServiceID:    r.URL.Query().Get("service_id"),
		StaffID:      r.URL.Query().Get("staff_id"),
		Date:         r.URL.Query().Get("date"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.appointmentUsecase.GetAvailableSlots(r.Context(), &req)
	if err != nil {
		h.writeSlotError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved", slots)
}

func (h *AppointmentHandler) writeSlotError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrBusinessNotFound:
		response.NotFound(w, "Business not found")
	case usecase.ErrServiceNotFound:
		response.NotFound(w, "Service not found")
	case usecase.ErrStaffNotFound:
		response.NotFound(w, "Staff not found")
	case usecase.ErrInvalidDate:
		response.BadRequest(w, "Invalid date")
	case usecase.ErrInvalidTimezone:
		response.InternalServerError(w, "Business timezone is invalid")
	default:
		response.InternalServerError(w, "Failed to compute slots")
	}
}

// Create books an appointment for the authenticated customer
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), customerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotUnavailable:
			response.Conflict(w, "Requested slot is not available")
		case usecase.ErrPurchaseNotFound:
			response.NotFound(w, "Package purchase not found")
		case usecase.ErrPurchaseNotOwned:
			response.Forbidden(w, "Purchase does not belong to you")
		case usecase.ErrPurchaseNotActive:
			response.Conflict(w, "Package purchase is not active")
		case usecase.ErrPurchaseExpired:
			response.Conflict(w, "Package purchase has expired")
		case usecase.ErrNoRemainingSessions:
			response.Conflict(w, "No remaining sessions on this purchase")
		case usecase.ErrSessionAlreadyConsumed:
			response.Conflict(w, "A session was already consumed for this appointment")
		case usecase.ErrPackageServiceMismatch:
			response.Conflict(w, "Package is not valid for this service")
		default:
			h.writeSlotError(w, err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked", converter.AppointmentToResponse(appointment))
}

// ListMine returns the authenticated customer's appointments
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	appointments, err := h.appointmentUsecase.ListMine(r.Context(), customerID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved", converter.AppointmentsToResponses(appointments))
}

// Get returns a single appointment visible to the caller
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	ownerView := roleID == entity.RoleIDOwner

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), actorID, appointmentID, ownerView)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrBusinessNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved", converter.AppointmentToResponse(appointment))
}

// Cancel releases the slot, restoring a consumed package session if any
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	ownerView := roleID == entity.RoleIDOwner

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), actorID, appointmentID, ownerView)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrBusinessNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotCancelable:
			response.Error(w, http.StatusUnprocessableEntity, "Appointment can no longer be cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled", converter.AppointmentToResponse(appointment))
}

// ListForBusiness returns the owner's appointment book, optionally filtered
// by date range and status
func (h *AppointmentHandler) ListForBusiness(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	filter := &entity.AppointmentFilter{
		Status: r.URL.Query().Get("status"),
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			response.BadRequest(w, "Invalid from date")
			return
		}
		filter.From = from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			response.BadRequest(w, "Invalid to date")
			return
		}
		filter.To = to
	}

	appointments, err := h.appointmentUsecase.ListOwned(r.Context(), ownerID, filter)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved", converter.AppointmentsToResponses(appointments))
}

// UpdateStatus moves an appointment through its lifecycle (owner only)
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), ownerID, appointmentID, entity.AppointmentStatus(req.Status))
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrBusinessNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidStatusTransition:
			response.Error(w, http.StatusUnprocessableEntity, "Invalid status transition", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated", converter.AppointmentToResponse(appointment))
}

// Report summarizes appointment counts by status over a date range
func (h *AppointmentHandler) Report(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now
	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(w, "Invalid from date")
			return
		}
		from = t
	}
	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(w, "Invalid to date")
			return
		}
		// Include the whole end day.
		to = t.AddDate(0, 0, 1)
	}

	report, err := h.appointmentUsecase.Report(r.Context(), ownerID, from, to)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to build report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report generated", report)
}
