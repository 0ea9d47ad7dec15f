package entity

import "time"

// SavedReport wraps an AnalysisResult the patient chose to keep.
type SavedReport struct {
	ID           string         `json:"id"`
	PatientEmail string         `json:"patientEmail"`
	CreatedAt    time.Time      `json:"createdAt"`
	Analysis     AnalysisResult `json:"analysis"`
}
