package converter

import (
	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
)

// BusinessToResponse converts a Business entity to BusinessResponse DTO
func BusinessToResponse(business *entity.Business) *dto.BusinessResponse {
	if business == nil {
		return nil
	}

	return &dto.BusinessResponse{
		ID:                  business.ID,
		Name:                business.Name,
		Slug:                business.Slug,
		Description:         business.Description,
		PhoneNumber:         business.PhoneNumber,
		Address:             business.Address,
		Timezone:            business.Timezone,
		SlotDurationMinutes: business.SlotDurationMinutes,
		IsActive:            business.IsActive,
		CreatedAt:           business.CreatedAt,
		UpdatedAt:           business.UpdatedAt,
	}
}

// BusinessesToResponses converts a slice of Business entities to response DTOs
func BusinessesToResponses(businesses []entity.Business) []dto.BusinessResponse {
	responses := make([]dto.BusinessResponse, len(businesses))
	for i := range businesses {
		responses[i] = *BusinessToResponse(&businesses[i])
	}
	return responses
}
