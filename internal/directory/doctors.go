package directory

import (
	"strings"

	"medreport-assistant/internal/domain/entity"
)

// seedDoctors is the static catalog. Read-only reference data; never
// mutated, never persisted.
func seedDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:             "doc-1",
			Name:           "Dr. Anita Rao",
			Specialization: "Cardiologist",
			Experience:     14,
			Fee:            120,
			Rating:         4.8,
			ReviewCount:    214,
			Bio:            "Interventional cardiologist focused on preventive heart care and lipid management.",
			Slots:          []string{"09:00 AM", "10:00 AM", "11:30 AM", "02:00 PM", "04:30 PM"},
		},
		{
			ID:             "doc-2",
			Name:           "Dr. Marcus Webb",
			Specialization: "General Physician",
			Experience:     9,
			Fee:            60,
			Rating:         4.6,
			ReviewCount:    382,
			Bio:            "Family medicine practitioner handling routine checkups and chronic condition follow-ups.",
			Slots:          []string{"08:30 AM", "09:30 AM", "11:00 AM", "01:30 PM", "03:00 PM", "05:00 PM"},
		},
		{
			ID:             "doc-3",
			Name:           "Dr. Sofia Lindqvist",
			Specialization: "Endocrinologist",
			Experience:     12,
			Fee:            110,
			Rating:         4.9,
			ReviewCount:    157,
			Bio:            "Specialist in diabetes, thyroid disorders, and hormonal imbalances.",
			Slots:          []string{"10:00 AM", "11:00 AM", "12:00 PM", "03:30 PM"},
		},
		{
			ID:             "doc-4",
			Name:           "Dr. Harpreet Singh",
			Specialization: "Neurologist",
			Experience:     17,
			Fee:            150,
			Rating:         4.7,
			ReviewCount:    98,
			Bio:            "Neurologist treating migraines, epilepsy, and movement disorders.",
			Slots:          []string{"09:00 AM", "11:30 AM", "02:30 PM", "04:00 PM"},
		},
		{
			ID:             "doc-5",
			Name:           "Dr. Elena Petrova",
			Specialization: "Dermatologist",
			Experience:     8,
			Fee:            90,
			Rating:         4.5,
			ReviewCount:    263,
			Bio:            "Clinical dermatologist covering skin conditions, allergies, and cosmetic consultations.",
			Slots:          []string{"08:00 AM", "09:30 AM", "11:00 AM", "01:00 PM", "02:30 PM"},
		},
		{
			ID:             "doc-6",
			Name:           "Dr. Tomás Ferreira",
			Specialization: "Orthopedic Surgeon",
			Experience:     20,
			Fee:            140,
			Rating:         4.8,
			ReviewCount:    176,
			Bio:            "Orthopedic surgeon specializing in sports injuries and joint replacement.",
			Slots:          []string{"10:30 AM", "12:00 PM", "02:00 PM", "05:30 PM"},
		},
	}
}

// Doctors returns the catalog in seed order. A non-empty filter keeps
// doctors whose specialization contains the filter or is contained by it,
// case-insensitively. The bidirectional match lets a short query like
// "Cardio" find "Cardiologist" and a model-provided phrase like "Heart
// Specialist / Cardiologist" find the same doctor.
func (s *Service) Doctors(filter string) []entity.Doctor {
	catalog := make([]entity.Doctor, len(s.doctors))
	copy(catalog, s.doctors)

	filter = strings.TrimSpace(filter)
	if filter == "" {
		return catalog
	}

	needle := strings.ToLower(filter)
	matched := []entity.Doctor{}
	for _, doctor := range catalog {
		specialization := strings.ToLower(doctor.Specialization)
		if strings.Contains(specialization, needle) || strings.Contains(needle, specialization) {
			matched = append(matched, doctor)
		}
	}

	return matched
}

// Doctor looks up a catalog entry by id.
func (s *Service) Doctor(id string) (*entity.Doctor, bool) {
	for _, doctor := range s.doctors {
		if doctor.ID == id {
			d := doctor
			return &d, true
		}
	}

	return nil, false
}
