package models

import "time"

// MeetingRequest is a proposal from an external party to meet at a given
// date and time. New requests always start pending; accept and decline are
// both terminal.
type MeetingRequest struct {
	ID        int       `json:"id"`
	From      string    `json:"from"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Meeting is the record materialized when a request is accepted. It carries
// the source request id, so an id present here never reappears among the
// pending requests.
type Meeting struct {
	ID          int       `json:"id"`
	From        string    `json:"from"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	StartAt     time.Time `json:"startAt"`
	ConfirmedAt time.Time `json:"confirmedAt"`
	Notified    bool      `json:"notified"`
}
