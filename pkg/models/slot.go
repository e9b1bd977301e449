package models

import "time"

// AvailabilitySlot is a window the owner offers for scheduling. Slots are
// created and deleted by the owner and never mutated in between.
type AvailabilitySlot struct {
	ID        int       `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}
