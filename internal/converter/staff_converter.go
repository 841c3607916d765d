package converter

import (
	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
)

// StaffToResponse converts a Staff entity to StaffResponse DTO
func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:          staff.ID,
		BusinessID:  staff.BusinessID,
		Name:        staff.Name,
		PhoneNumber: staff.PhoneNumber,
		IsActive:    staff.IsActive,
		CreatedAt:   staff.CreatedAt,
		UpdatedAt:   staff.UpdatedAt,
	}
}

// StaffsToResponses converts a slice of Staff entities to response DTOs
func StaffsToResponses(staffs []entity.Staff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(staffs))
	for i := range staffs {
		responses[i] = *StaffToResponse(&staffs[i])
	}
	return responses
}
