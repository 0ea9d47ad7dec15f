package converter

import (
	"medreport-assistant/internal/delivery/dto"
	"medreport-assistant/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:           appointment.ID,
		DoctorID:     appointment.DoctorID,
		DoctorName:   appointment.DoctorName,
		Slot:         appointment.Slot,
		PatientName:  appointment.PatientName,
		PatientEmail: appointment.PatientEmail,
		Status:       string(appointment.Status),
		CreatedAt:    appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// ReceiptToResponse converts a CancellationReceipt to CancellationResponse DTO
func ReceiptToResponse(receipt *entity.CancellationReceipt) *dto.CancellationResponse {
	if receipt == nil {
		return nil
	}

	return &dto.CancellationResponse{
		AppointmentID: receipt.AppointmentID,
		DoctorName:    receipt.DoctorName,
		Slot:          receipt.Slot,
	}
}
