package models

// User is an account known to the backend. Role is one of
// "admin", "superadmin", "staff" or "user".
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	OfficeID  int    `json:"office_id,omitempty"`
	ImageURL  string `json:"image,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type ProfilePayload struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
