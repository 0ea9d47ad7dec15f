package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Slot     string `json:"slot" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           string    `json:"id"`
	DoctorID     string    `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name"`
	Slot         string    `json:"slot"`
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type CancellationResponse struct {
	AppointmentID string `json:"appointment_id"`
	DoctorName    string `json:"doctor_name"`
	Slot          string `json:"slot"`
}
