package directory

import (
	"errors"
	"time"

	"medreport-assistant/internal/domain/entity"
	"medreport-assistant/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownDoctor       = errors.New("doctor not found")
	ErrSlotUnavailable     = errors.New("this slot is no longer available")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotOwner            = errors.New("appointment belongs to a different account")
)

// BookAppointment books slot with the given doctor for account. Slot
// exclusivity is checked against currently confirmed appointments only, so
// a cancelled slot is immediately rebookable. Doctor name and the
// account's name/email are snapshotted at creation; later changes to
// either never touch existing appointments.
func (s *Service) BookAppointment(doctorID, slot string, account entity.UserAccount) (*entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctor, ok := s.Doctor(doctorID)
	if !ok {
		return nil, ErrUnknownDoctor
	}

	for _, existing := range s.appointments {
		if existing.Status == entity.AppointmentStatusConfirmed &&
			existing.DoctorID == doctorID && existing.Slot == slot {
			return nil, ErrSlotUnavailable
		}
	}

	appointment := entity.Appointment{
		ID:           uuid.NewString(),
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		Slot:         slot,
		PatientName:  account.Name,
		PatientEmail: account.Email,
		Status:       entity.AppointmentStatusConfirmed,
		CreatedAt:    s.now(),
	}

	s.appointments = append(s.appointments, appointment)
	s.store.Save(storage.KeyAppointments, s.appointments)

	s.log.Infof("Appointment booked: id=%s, doctor=%s, slot=%q", appointment.ID, doctor.ID, slot)
	return &appointment, nil
}

// AppointmentsFor lists the appointments owned by email, newest first.
func (s *Service) AppointmentsFor(email string) []entity.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	mine := []entity.Appointment{}
	for _, appointment := range s.appointments {
		if appointment.PatientEmail == email {
			mine = append(mine, appointment)
		}
	}

	return newestFirst(mine, func(a entity.Appointment) time.Time { return a.CreatedAt })
}

// CancelAppointment hard-deletes the appointment with id. The ownership
// check runs strictly before any mutation: an unauthorized caller leaves
// the appointment present and still conflict-inducing. Every successful
// cancellation emits an audit line and appends to the audit trail.
func (s *Service) CancelAppointment(id, requestingEmail string) (*entity.CancellationReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, appointment := range s.appointments {
		if appointment.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrAppointmentNotFound
	}

	appointment := s.appointments[idx]
	if appointment.PatientEmail != requestingEmail {
		return nil, ErrNotOwner
	}

	s.appointments = append(s.appointments[:idx], s.appointments[idx+1:]...)
	s.store.Save(storage.KeyAppointments, s.appointments)

	cancelledAt := s.now()
	s.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"email":          requestingEmail,
		"cancelled_at":   cancelledAt.Format(time.RFC3339),
	}).Info("Appointment cancelled")

	s.appendAudit(entity.AuditEntry{
		Action:        entity.AuditActionAppointmentCancel,
		AppointmentID: appointment.ID,
		Email:         requestingEmail,
		CreatedAt:     cancelledAt,
	})

	return &entity.CancellationReceipt{
		AppointmentID: appointment.ID,
		DoctorName:    appointment.DoctorName,
		Slot:          appointment.Slot,
	}, nil
}

// appendAudit grows the stored audit trail. The trail is write-only from
// the service's perspective and not held in memory between calls.
func (s *Service) appendAudit(entry entity.AuditEntry) {
	var trail []entity.AuditEntry
	s.store.Load(storage.KeyAudit, &trail)
	trail = append(trail, entry)
	s.store.Save(storage.KeyAudit, trail)
}
