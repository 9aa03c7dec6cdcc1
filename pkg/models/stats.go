package models

// Stats holds the admin dashboard counters.
type Stats struct {
	Devices          int `json:"devices"`
	AvailableDevices int `json:"available_devices"`
	Offices          int `json:"offices"`
	Users            int `json:"users"`
	PendingReports   int `json:"pending_reports"`
	ResolvedReports  int `json:"resolved_reports"`
}
