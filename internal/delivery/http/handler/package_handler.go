package handler

import (
	"encoding/json"
	"net/http"

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

type PackageHandler struct {
	packageUsecase usecase.PackageUsecase
	validator      *validator.CustomValidator
}

func NewPackageHandler(packageUsecase usecase.PackageUsecase, validator *validator.CustomValidator) *PackageHandler {
	return &PackageHandler{
		packageUsecase: packageUsecase,
		validator:      validator,
	}
}

// Create defines a new session bundle for the owner's business
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pkg, err := h.packageUsecase.CreatePackage(r.Context(), ownerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrInvalidPrice:
			response.BadRequest(w, "Invalid price")
		default:
			response.InternalServerError(w, "Failed to create package")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Package created", converter.PackageToResponse(pkg))
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	packages, err := h.packageUsecase.ListOwnedPackages(r.Context(), ownerID)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to list packages")
		}
		return
	}

	response.Success(w, http.StatusOK, "Packages retrieved", converter.PackagesToResponses(packages))
}

func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	packageID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid package ID")
		return
	}

	var req dto.UpdatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pkg, err := h.packageUsecase.UpdatePackage(r.Context(), ownerID, packageID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound, usecase.ErrPackageNotFound:
			response.NotFound(w, "Package not found")
		case usecase.ErrInvalidPrice:
			response.BadRequest(w, "Invalid price")
		default:
			response.InternalServerError(w, "Failed to update package")
		}
		return
	}

	response.Success(w, http.StatusOK, "Package updated", converter.PackageToResponse(pkg))
}

func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	packageID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid package ID")
		return
	}

	if err := h.packageUsecase.DeletePackage(r.Context(), ownerID, packageID); err != nil {
		switch err {
		case usecase.ErrBusinessNotFound, usecase.ErrPackageNotFound:
			response.NotFound(w, "Package not found")
		default:
			response.InternalServerError(w, "Failed to delete package")
		}
		return
	}

	response.Success(w, http.StatusOK, "Package deactivated", nil)
}

// Purchase buys a package for the authenticated customer
func (h *PackageHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.PurchasePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	purchase, err := h.packageUsecase.Purchase(r.Context(), customerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPackageNotFound, usecase.ErrBusinessNotFound:
			response.NotFound(w, "Package not found")
		case usecase.ErrPackageNotPurchasable:
			response.Error(w, http.StatusUnprocessableEntity, "Package is not available for purchase", nil)
		default:
			response.InternalServerError(w, "Failed to purchase package")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Package purchased", converter.PurchaseToResponse(purchase))
}

// ConfirmPayment marks a purchase paid and activates it (owner only)
func (h *PackageHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	purchaseID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid purchase ID")
		return
	}

	purchase, err := h.packageUsecase.ConfirmPayment(r.Context(), ownerID, purchaseID)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound, usecase.ErrPurchaseNotFound, usecase.ErrPackageNotFound:
			response.NotFound(w, "Purchase not found")
		case usecase.ErrPaymentAlreadyConfirmed:
			response.Conflict(w, "Payment already confirmed")
		default:
			response.InternalServerError(w, "Failed to confirm payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment confirmed", converter.PurchaseToResponse(purchase))
}

// ListMyPurchases returns the customer's purchases with live balances
func (h *PackageHandler) ListMyPurchases(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	purchases, err := h.packageUsecase.ListMyPurchases(r.Context(), customerID)
	if err != nil {
		response.InternalServerError(w, "Failed to list purchases")
		return
	}

	response.Success(w, http.StatusOK, "Purchases retrieved", converter.PurchasesToResponses(purchases))
}

// ListBusinessPurchases returns every purchase against the owner's business
func (h *PackageHandler) ListBusinessPurchases(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	purchases, err := h.packageUsecase.ListBusinessPurchases(r.Context(), ownerID)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		default:
			response.InternalServerError(w, "Failed to list purchases")
		}
		return
	}

	response.Success(w, http.StatusOK, "Purchases retrieved", converter.PurchasesToResponses(purchases))
}

// GetPurchase returns a single purchase with its current ledger state.
// Customers see their own purchases; owners see purchases against their
// business.
func (h *PackageHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	purchaseID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid purchase ID")
		return
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	ownerView := roleID == entity.RoleIDOwner

	purchase, err := h.packageUsecase.GetPurchase(r.Context(), actorID, purchaseID, ownerView)
	if err != nil {
		switch err {
		case usecase.ErrPurchaseNotFound, usecase.ErrBusinessNotFound:
			response.NotFound(w, "Purchase not found")
		default:
			response.InternalServerError(w, "Failed to get purchase")
		}
		return
	}

	response.Success(w, http.StatusOK, "Purchase retrieved", converter.PurchaseToResponse(purchase))
}

// ConsumeSession draws one session from a purchase for an appointment
func (h *PackageHandler) ConsumeSession(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.ConsumeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	usage, purchase, err := h.packageUsecase.ConsumeSession(r.Context(), customerID, &req)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Session consumed", &dto.ConsumeSessionResponse{
		SessionUsage: converter.UsageToResponse(usage),
		Purchase:     converter.PurchaseToResponse(purchase),
	})
}

// RestoreSession returns a previously consumed session to a purchase
func (h *PackageHandler) RestoreSession(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.RestoreSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	purchase, err := h.packageUsecase.RestoreSession(r.Context(), customerID, &req)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Session restored", converter.PurchaseToResponse(purchase))
}

func (h *PackageHandler) writeLedgerError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrPurchaseNotFound, usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Purchase or appointment not found")
	case usecase.ErrPurchaseNotOwned:
		response.Forbidden(w, "Purchase does not belong to you")
	case usecase.ErrPurchaseNotActive:
		response.Conflict(w, "Purchase is not active")
	case usecase.ErrPurchaseExpired:
		response.Conflict(w, "Purchase has expired")
	case usecase.ErrNoRemainingSessions:
		response.Conflict(w, "No remaining sessions")
	case usecase.ErrSessionAlreadyConsumed:
		response.Conflict(w, "A session was already consumed for this appointment")
	case usecase.ErrNoUsageFound:
		response.NotFound(w, "No session usage found for this appointment")
	default:
		response.InternalServerError(w, "Ledger operation failed")
	}
}
