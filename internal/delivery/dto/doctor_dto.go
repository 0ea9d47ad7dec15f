package dto

// Response DTOs

type DoctorResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience"`
	Fee            int      `json:"fee"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	Bio            string   `json:"bio,omitempty"`
	Slots          []string `json:"slots"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
