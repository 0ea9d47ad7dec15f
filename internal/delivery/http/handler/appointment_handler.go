package handler

import (
	"encoding/json"
	"net/http"

	"medreport-assistant/internal/converter"
	"medreport-assistant/internal/delivery/dto"
	"medreport-assistant/internal/delivery/http/middleware"
	"medreport-assistant/internal/directory"
	"medreport-assistant/internal/domain/entity"
	"medreport-assistant/pkg/response"
	"medreport-assistant/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	directory *directory.Service
	validator *validator.CustomValidator
}

func NewAppointmentHandler(directoryService *directory.Service, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		directory: directoryService,
		validator: validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	name, _ := middleware.GetUserNameFromContext(r.Context())

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	account := entity.UserAccount{Name: name, Email: email}
	appointment, err := h.directory.BookAppointment(req.DoctorID, req.Slot, account)
	if err != nil {
		switch err {
		case directory.ErrUnknownDoctor:
			response.NotFound(w, "Doctor not found")
		case directory.ErrSlotUnavailable:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", converter.AppointmentToResponse(appointment))
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments := h.directory.AppointmentsFor(email)

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	})
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID := vars["id"]
	if appointmentID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	receipt, err := h.directory.CancelAppointment(appointmentID, email)
	if err != nil {
		switch err {
		case directory.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case directory.ErrNotOwner:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", converter.ReceiptToResponse(receipt))
}
