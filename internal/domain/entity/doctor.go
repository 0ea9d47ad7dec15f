package entity

// Doctor is static catalog data: seeded at startup, read-only, never
// persisted. Slots are opaque display labels ("10:00 AM"), not datetimes.
type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience"`
	Fee            int      `json:"fee"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	Bio            string   `json:"bio"`
	Slots          []string `json:"slots"`
}
