package models

import "encoding/json"

// FlexID tolerates both id shapes the backend uses: numeric ids for
// database rows, string UUIDs elsewhere. Either decodes to its string
// form.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// Notification is a single entry in the user's notification feed.
// ReadAt is nil until the user marks the feed read.
type Notification struct {
	ID        FlexID  `json:"id"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"created_at"`
	ReadAt    *string `json:"read_at"`
}

// NotificationEvent is the payload broadcast on the real-time channel.
// The backend is loose about which field carries the text, so all three
// are accepted.
type NotificationEvent struct {
	Message string `json:"message,omitempty"`
	Title   string `json:"title,omitempty"`
	Body    string `json:"body,omitempty"`
}

// Text returns the first non-empty field of the event payload.
func (e NotificationEvent) Text() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Title != "" {
		return e.Title
	}
	return e.Body
}
