package dto

import (
	"time"

	"medreport-assistant/internal/domain/entity"
)

// Request DTOs

type SaveReportRequest struct {
	Analysis entity.AnalysisResult `json:"analysis" validate:"required"`
}

// Response DTOs

type ReportResponse struct {
	ID           string                `json:"id"`
	PatientEmail string                `json:"patient_email"`
	CreatedAt    time.Time             `json:"created_at"`
	Analysis     entity.AnalysisResult `json:"analysis"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
