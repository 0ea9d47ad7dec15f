package entity

import "time"

// AppointmentStatus of a stored appointment. Booking only ever produces
// Confirmed; cancellation deletes the record rather than transitioning it,
// so no other status value exists in storage.
type AppointmentStatus string

const AppointmentStatusConfirmed AppointmentStatus = "Confirmed"

// Appointment is a booked (doctor, slot) pair. Doctor name and patient
// name/email are denormalized snapshots taken at booking time.
type Appointment struct {
	ID           string            `json:"id"`
	DoctorID     string            `json:"doctorId"`
	DoctorName   string            `json:"doctorName"`
	Slot         string            `json:"slot"`
	PatientName  string            `json:"patientName"`
	PatientEmail string            `json:"patientEmail"`
	Status       AppointmentStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// CancellationReceipt is returned on successful cancellation for display.
type CancellationReceipt struct {
	AppointmentID string `json:"appointmentId"`
	DoctorName    string `json:"doctorName"`
	Slot          string `json:"slot"`
}
