package converter

import (
	"medreport-assistant/internal/delivery/dto"
	"medreport-assistant/internal/domain/entity"
)

// ReportToResponse converts a SavedReport entity to ReportResponse DTO
func ReportToResponse(report *entity.SavedReport) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	return &dto.ReportResponse{
		ID:           report.ID,
		PatientEmail: report.PatientEmail,
		CreatedAt:    report.CreatedAt,
		Analysis:     report.Analysis,
	}
}

// ReportsToResponses converts a slice of SavedReport entities to slice of ReportResponse DTOs
func ReportsToResponses(reports []entity.SavedReport) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, len(reports))
	for i, report := range reports {
		resp := ReportToResponse(&report)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
