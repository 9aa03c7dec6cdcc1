package models

// Report is an issue filed against a device or office.
type Report struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status"` // "pending" or "resolved"
	DeviceID       int    `json:"device_id,omitempty"`
	OfficeID       int    `json:"office_id,omitempty"`
	UserID         int    `json:"user_id"`
	ResolutionNote string `json:"resolution_note,omitempty"`
	CreatedAt      string `json:"created_at"`
	ResolvedAt     string `json:"resolved_at,omitempty"`
}

type ReportPayload struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DeviceID    int    `json:"device_id,omitempty"`
	OfficeID    int    `json:"office_id,omitempty"`
}
