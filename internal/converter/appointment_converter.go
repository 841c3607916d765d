package converter

import (
	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                appointment.ID,
		BusinessID:        appointment.BusinessID,
		CustomerID:        appointment.CustomerID,
		ServiceID:         appointment.ServiceID,
		StaffID:           appointment.StaffID,
		StartTime:         appointment.StartTime,
		EndTime:           appointment.EndTime,
		Status:            string(appointment.Status),
		PackagePurchaseID: appointment.PackagePurchaseID,
		Notes:             appointment.Notes,
		CreatedAt:         appointment.CreatedAt,
		UpdatedAt:         appointment.UpdatedAt,
	}
	if appointment.Service.ID == appointment.ServiceID {
		response.ServiceName = appointment.Service.Name
	}
	if appointment.Staff != nil {
		response.StaffName = appointment.Staff.Name
	}
	if appointment.Customer.ID == appointment.CustomerID {
		response.CustomerName = appointment.Customer.FullName
	}
	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
