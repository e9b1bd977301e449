package models

// Event is the calendar-surface record. One type covers both availability
// and meetings, tagged by Kind; Status is meaningful only when Kind is
// meeting and stays empty otherwise.
type Event struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
	Kind   Kind   `json:"kind"`
	Status Status `json:"status,omitempty"`
}

// EventPatch carries the fields an edit replaces. Nil fields are left as is.
type EventPatch struct {
	Title  *string `json:"title"`
	Start  *string `json:"start"`
	AllDay *bool   `json:"allDay"`
	Status *Status `json:"status"`
}
