package converter

import (
	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
)

// WorkingHourToResponse converts a WorkingHour entity to WorkingHourResponse DTO
func WorkingHourToResponse(hour *entity.WorkingHour) *dto.WorkingHourResponse {
	if hour == nil {
		return nil
	}

	return &dto.WorkingHourResponse{
		ID:        hour.ID,
		StaffID:   hour.StaffID,
		DayOfWeek: hour.DayOfWeek,
		StartTime: hour.StartTime,
		EndTime:   hour.EndTime,
		IsActive:  hour.IsActive,
		CreatedAt: hour.CreatedAt,
		UpdatedAt: hour.UpdatedAt,
	}
}

// WorkingHoursToResponses converts a slice of WorkingHour entities to response DTOs
func WorkingHoursToResponses(hours []entity.WorkingHour) []dto.WorkingHourResponse {
	responses := make([]dto.WorkingHourResponse, len(hours))
	for i := range hours {
		responses[i] = *WorkingHourToResponse(&hours[i])
	}
	return responses
}
