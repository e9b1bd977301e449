package models

type Status string

const (
	StatusPending  Status = `pending`
	StatusAccepted Status = `accepted`
	StatusDeclined Status = `declined`
)

type Decision string

const (
	DecisionAccepted Decision = `accepted`
	DecisionDeclined Decision = `declined`
)

type Kind string

const (
	KindAvailability Kind = `availability`
	KindMeeting      Kind = `meeting`
)

// Snapshot is a consistent copy of every store collection, taken between
// commands. Mutating a snapshot never affects the store.
type Snapshot struct {
	Slots             []AvailabilitySlot `json:"slots"`
	PendingRequests   []MeetingRequest   `json:"pendingRequests"`
	ConfirmedMeetings []Meeting          `json:"confirmedMeetings"`
	Events            []Event            `json:"events"`
}
