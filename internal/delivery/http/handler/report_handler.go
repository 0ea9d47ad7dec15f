package handler

import (
	"encoding/json"
	"net/http"

	"medreport-assistant/internal/converter"
	"medreport-assistant/internal/delivery/dto"
	"medreport-assistant/internal/delivery/http/middleware"
	"medreport-assistant/internal/directory"
	"medreport-assistant/pkg/response"
	"medreport-assistant/pkg/validator"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	directory *directory.Service
	validator *validator.CustomValidator
}

func NewReportHandler(directoryService *directory.Service, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		directory: directoryService,
		validator: validator,
	}
}

func (h *ReportHandler) SaveReport(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SaveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report := h.directory.SaveReport(email, req.Analysis)

	response.Success(w, http.StatusCreated, "Report saved successfully", converter.ReportToResponse(report))
}

func (h *ReportHandler) GetMyReports(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	reports := h.directory.ReportsFor(email)

	response.Success(w, http.StatusOK, "Reports retrieved successfully", dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	})
}

func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reportID := vars["id"]
	if reportID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	if err := h.directory.DeleteReport(reportID); err != nil {
		switch err {
		case directory.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		default:
			response.InternalServerError(w, "Failed to delete report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report deleted successfully", nil)
}
