package directory

import (
	"errors"
	"testing"

	"medreport-assistant/internal/domain/entity"
)

func TestBookAppointmentSlotExclusivity(t *testing.T) {
	svc, _ := newTestService(t)
	tick(svc)

	userA := patient("Alice", "a@x.com")
	userB := patient("Bob", "b@x.com")

	booked, err := svc.BookAppointment("doc-1", "10:00 AM", userA)
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	if booked.Status != entity.AppointmentStatusConfirmed {
		t.Errorf("Status = %q, want Confirmed", booked.Status)
	}
	if booked.DoctorName == "" || booked.PatientEmail != "a@x.com" {
		t.Errorf("denormalized fields not set: %+v", booked)
	}

	if _, err := svc.BookAppointment("doc-1", "10:00 AM", userB); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("second booking error = %v, want ErrSlotUnavailable", err)
	}

	// A different slot with the same doctor is free.
	if _, err := svc.BookAppointment("doc-1", "11:30 AM", userB); err != nil {
		t.Fatalf("different slot error = %v", err)
	}

	// So is the same slot with a different doctor.
	if _, err := svc.BookAppointment("doc-2", "10:00 AM", userB); err != nil {
		t.Fatalf("different doctor error = %v", err)
	}
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.BookAppointment("doc-999", "10:00 AM", patient("Alice", "a@x.com")); !errors.Is(err, ErrUnknownDoctor) {
		t.Fatalf("error = %v, want ErrUnknownDoctor", err)
	}
}

func TestCancelAppointmentOwnershipAndRebooking(t *testing.T) {
	svc, _ := newTestService(t)
	tick(svc)

	userA := patient("Alice", "a@x.com")
	userB := patient("Bob", "b@x.com")

	booked, err := svc.BookAppointment("doc-1", "10:00 AM", userA)
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}

	// A non-owner cannot cancel, and the slot stays conflict-inducing.
	if _, err := svc.CancelAppointment(booked.ID, userB.Email); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("non-owner cancel error = %v, want ErrNotOwner", err)
	}
	if _, err := svc.BookAppointment("doc-1", "10:00 AM", userB); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("booking after failed cancel error = %v, want ErrSlotUnavailable", err)
	}
	if got := svc.AppointmentsFor(userA.Email); len(got) != 1 {
		t.Fatalf("owner has %d appointments after failed cancel, want 1", len(got))
	}

	receipt, err := svc.CancelAppointment(booked.ID, userA.Email)
	if err != nil {
		t.Fatalf("owner cancel error = %v", err)
	}
	if receipt.AppointmentID != booked.ID || receipt.DoctorName != booked.DoctorName || receipt.Slot != "10:00 AM" {
		t.Errorf("receipt = %+v, want id/doctor/slot of the cancelled appointment", receipt)
	}

	// Cancellation is a hard delete: nothing retained.
	if got := svc.AppointmentsFor(userA.Email); len(got) != 0 {
		t.Fatalf("owner has %d appointments after cancel, want 0", len(got))
	}

	// The slot is immediately rebookable.
	if _, err := svc.BookAppointment("doc-1", "10:00 AM", userB); err != nil {
		t.Fatalf("rebooking cancelled slot error = %v", err)
	}
}

func TestCancelAppointmentNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CancelAppointment("no-such-id", "a@x.com"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("error = %v, want ErrAppointmentNotFound", err)
	}
}

func TestAppointmentsForFiltersAndOrdersNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	tick(svc)

	userA := patient("Alice", "a@x.com")
	userB := patient("Bob", "b@x.com")

	first, _ := svc.BookAppointment("doc-1", "09:00 AM", userA)
	if _, err := svc.BookAppointment("doc-2", "08:30 AM", userB); err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	second, _ := svc.BookAppointment("doc-2", "09:30 AM", userA)
	third, _ := svc.BookAppointment("doc-3", "10:00 AM", userA)

	got := svc.AppointmentsFor(userA.Email)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, appointment := range got {
		if appointment.PatientEmail != userA.Email {
			t.Fatalf("listing leaked appointment owned by %q", appointment.PatientEmail)
		}
	}
	if got[0].ID != third.ID || got[1].ID != second.ID || got[2].ID != first.ID {
		t.Errorf("ordering = [%s %s %s], want newest first", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestCancelAppointmentWritesAuditTrail(t *testing.T) {
	svc, store := newTestService(t)
	tick(svc)

	userA := patient("Alice", "a@x.com")
	booked, _ := svc.BookAppointment("doc-1", "10:00 AM", userA)
	if _, err := svc.CancelAppointment(booked.ID, userA.Email); err != nil {
		t.Fatalf("CancelAppointment() error = %v", err)
	}

	var trail []entity.AuditEntry
	if !store.Load("audit", &trail) {
		t.Fatal("no audit trail stored after cancellation")
	}
	if len(trail) != 1 {
		t.Fatalf("audit trail has %d entries, want 1", len(trail))
	}
	entry := trail[0]
	if entry.Action != entity.AuditActionAppointmentCancel || entry.AppointmentID != booked.ID || entry.Email != userA.Email {
		t.Errorf("audit entry = %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("audit entry has zero timestamp")
	}
}
