package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

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

type BusinessHandler struct {
	businessUsecase    usecase.BusinessUsecase
	serviceUsecase     usecase.ServiceUsecase
	staffUsecase       usecase.StaffUsecase
	workingHourUsecase usecase.WorkingHourUsecase
	packageUsecase     usecase.PackageUsecase
	validator          *validator.CustomValidator
}

func NewBusinessHandler(
	businessUsecase usecase.BusinessUsecase,
	serviceUsecase usecase.ServiceUsecase,
	staffUsecase usecase.StaffUsecase,
	workingHourUsecase usecase.WorkingHourUsecase,
	packageUsecase usecase.PackageUsecase,
	validator *validator.CustomValidator,
) *BusinessHandler {
	return &BusinessHandler{
		businessUsecase:    businessUsecase,
		serviceUsecase:     serviceUsecase,
		staffUsecase:       staffUsecase,
		workingHourUsecase: workingHourUsecase,
		packageUsecase:     packageUsecase,
		validator:          validator,
	}
}

// Create registers the caller's business
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	business, err := h.businessUsecase.Create(r.Context(), ownerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessAlreadyExists:
			response.Conflict(w, "Owner already has a business")
		case usecase.ErrSlugAlreadyExists:
			response.Conflict(w, "Business slug already exists")
		case usecase.ErrInvalidTimezone:
			response.BadRequest(w, "Invalid timezone")
		default:
			response.InternalServerError(w, "Failed to create business")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Business created", converter.BusinessToResponse(business))
}

// GetMine returns the caller's business
func (h *BusinessHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	business, err := h.businessUsecase.GetOwned(r.Context(), ownerID)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to get business")
		}
		return
	}

	response.Success(w, http.StatusOK, "Business retrieved", converter.BusinessToResponse(business))
}

// Update changes the caller's business profile and settings
func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.UpdateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	business, err := h.businessUsecase.Update(r.Context(), ownerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		case usecase.ErrInvalidTimezone:
			response.BadRequest(w, "Invalid timezone")
		default:
			response.InternalServerError(w, "Failed to update business")
		}
		return
	}

	response.Success(w, http.StatusOK, "Business updated", converter.BusinessToResponse(business))
}

// List returns the public directory of active businesses
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	businesses, total, err := h.businessUsecase.ListActive(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list businesses")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Businesses retrieved",
		converter.BusinessesToResponses(businesses), response.NewMeta(page, limit, total))
}

// GetBySlug returns a business's public profile with its active services,
// staff, working hours and packages
func (h *BusinessHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	business, ok := h.resolveSlug(w, r)
	if !ok {
		return
	}

	services, err := h.serviceUsecase.ListByBusiness(r.Context(), business.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}
	staff, err := h.staffUsecase.ListByBusiness(r.Context(), business.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to get staff")
		return
	}
	hours, err := h.workingHourUsecase.ListByBusiness(r.Context(), business.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to get working hours")
		return
	}
	packages, err := h.packageUsecase.ListByBusiness(r.Context(), business.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to get packages")
		return
	}

	payload := map[string]interface{}{
		"business":      converter.BusinessToResponse(business),
		"services":      converter.ServicesToResponses(services),
		"staff":         converter.StaffsToResponses(staff),
		"working_hours": converter.WorkingHoursToResponses(hours),
		"packages":      converter.PackagesToResponses(packages),
	}
	response.Success(w, http.StatusOK, "Business retrieved", payload)
}

// ListServices returns the active service catalog for a business slug
func (h *BusinessHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	business, ok := h.resolveSlug(w, r)
	if !ok {
		return
	}

	services, err := h.serviceUsecase.ListByBusiness(r.Context(), business.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved", converter.ServicesToResponses(services))
}

// ListPackages returns the purchasable session bundles for a business slug
func (h *BusinessHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	business, ok := h.resolveSlug(w, r)
	if !ok {
		return
	}

	packages, err := h.packageUsecase.ListByBusiness(r.Context(), business.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to get packages")
		return
	}

	response.Success(w, http.StatusOK, "Packages retrieved", converter.PackagesToResponses(packages))
}

func (h *BusinessHandler) resolveSlug(w http.ResponseWriter, r *http.Request) (*entity.Business, bool) {
	business, err := h.businessUsecase.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to get business")
		}
		return nil, false
	}
	return business, true
}

// SetActive is the admin toggle for a business's visibility
func (h *BusinessHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	businessID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid business ID")
		return
	}

	var req dto.SetBusinessActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.businessUsecase.SetActive(r.Context(), adminID, businessID, *req.IsActive); err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to update business")
		}
		return
	}

	response.Success(w, http.StatusOK, "Business updated", nil)
}
