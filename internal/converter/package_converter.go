package converter

import (
	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
)

// PackageToResponse converts a Package entity to PackageResponse DTO
func PackageToResponse(pkg *entity.Package) *dto.PackageResponse {
	if pkg == nil {
		return nil
	}

	return &dto.PackageResponse{
		ID:           pkg.ID,
		BusinessID:   pkg.BusinessID,
		ServiceID:    pkg.ServiceID,
		Name:         pkg.Name,
		Description:  pkg.Description,
		SessionCount: pkg.SessionCount,
		Price:        pkg.Price.StringFixed(2),
		ValidityDays: pkg.ValidityDays,
		IsActive:     pkg.IsActive,
		CreatedAt:    pkg.CreatedAt,
		UpdatedAt:    pkg.UpdatedAt,
	}
}

// PackagesToResponses converts a slice of Package entities to response DTOs
func PackagesToResponses(pkgs []entity.Package) []dto.PackageResponse {
	responses := make([]dto.PackageResponse, len(pkgs))
	for i := range pkgs {
		responses[i] = *PackageToResponse(&pkgs[i])
	}
	return responses
}

// PurchaseToResponse converts a PackagePurchase entity to PackagePurchaseResponse DTO
func PurchaseToResponse(purchase *entity.PackagePurchase) *dto.PackagePurchaseResponse {
	if purchase == nil {
		return nil
	}

	response := &dto.PackagePurchaseResponse{
		ID:                purchase.ID,
		PackageID:         purchase.PackageID,
		CustomerID:        purchase.CustomerID,
		BusinessID:        purchase.BusinessID,
		TotalSessions:     purchase.TotalSessions,
		UsedSessions:      purchase.UsedSessions,
		RemainingSessions: purchase.RemainingSessions,
		Status:            string(purchase.Status),
		PaymentStatus:     string(purchase.PaymentStatus),
		PurchaseDate:      purchase.PurchaseDate,
		ExpiryDate:        purchase.ExpiryDate,
		CreatedAt:         purchase.CreatedAt,
	}
	if purchase.Package.ID == purchase.PackageID {
		response.PackageName = purchase.Package.Name
	}
	return response
}

// PurchasesToResponses converts a slice of PackagePurchase entities to response DTOs
func PurchasesToResponses(purchases []entity.PackagePurchase) []dto.PackagePurchaseResponse {
	responses := make([]dto.PackagePurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = *PurchaseToResponse(&purchases[i])
	}
	return responses
}

// UsageToResponse converts a SessionUsage entity to SessionUsageResponse DTO
func UsageToResponse(usage *entity.SessionUsage) *dto.SessionUsageResponse {
	if usage == nil {
		return nil
	}

	return &dto.SessionUsageResponse{
		ID:            usage.ID,
		PurchaseID:    usage.PurchaseID,
		AppointmentID: usage.AppointmentID,
		SessionNumber: usage.SessionNumber,
		UsedAt:        usage.UsedAt,
	}
}
