package entity

// Role of a user account
type Role string

const (
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
)

// UserAccount represents a registered user. Accounts are immutable after
// signup; there is no edit or update path. The password hash is serialized
// into the stored accounts collection but must never leave the directory
// service on any return value.
type UserAccount struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Age          int    `json:"age,omitempty"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// WithoutHash returns a copy safe to hand back to callers.
func (a UserAccount) WithoutHash() *UserAccount {
	a.PasswordHash = ""
	return &a
}
