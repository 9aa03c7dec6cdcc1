package models

// Office represents a physical site devices are assigned to.
type Office struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	ImageURL  string `json:"image,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type OfficePayload struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}
