package handler

import (
	"net/http"

	"medreport-assistant/internal/converter"
	"medreport-assistant/internal/delivery/dto"
	"medreport-assistant/internal/directory"
	"medreport-assistant/pkg/response"
)

type DoctorHandler struct {
	directory *directory.Service
}

func NewDoctorHandler(directoryService *directory.Service) *DoctorHandler {
	return &DoctorHandler{directory: directoryService}
}

// GetDoctors returns the catalog, optionally filtered by specialty. The
// specialty match is a bidirectional substring, so both "Cardio" and a
// recommendation phrase like "Heart Specialist / Cardiologist" work.
func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	doctors := h.directory.Doctors(specialty)

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	})
}
