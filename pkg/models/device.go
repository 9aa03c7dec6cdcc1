package models

// Device represents a single managed IT asset.
type Device struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"` // e.g. "available", "in_use", "maintenance"
	CategoryID    int    `json:"device_category_id"`
	TypeID        int    `json:"device_type_id"`
	SubcategoryID int    `json:"device_subcategory_id"`
	OfficeID      int    `json:"office_id"`
	ImageURL      string `json:"image,omitempty"`
	CreatedAt     string `json:"created_at"` // ISO 8601
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// DevicePayload is the body sent on create/update. Zero-valued optional
// fields are omitted so partial updates do not clobber server state.
type DevicePayload struct {
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status,omitempty"`
	CategoryID    int    `json:"device_category_id,omitempty"`
	TypeID        int    `json:"device_type_id,omitempty"`
	SubcategoryID int    `json:"device_subcategory_id,omitempty"`
	OfficeID      int    `json:"office_id,omitempty"`
}
