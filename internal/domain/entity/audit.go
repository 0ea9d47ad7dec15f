package entity

import "time"

// Common audit actions
const (
	AuditActionAppointmentCancel = "appointment.cancel"
)

// AuditEntry records a sensitive directory mutation.
type AuditEntry struct {
	Action        string    `json:"action"`
	AppointmentID string    `json:"appointmentId,omitempty"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
}
