// Package display maps domain records to what the calendar surfaces render.
// Everything here is a pure read of a snapshot.
package display

import (
	"fmt"

	"github.com/pitchmate/meetslots/pkg/models"
)

const (
	ColorGreen  = `green`
	ColorBlue   = `blue`
	ColorRed    = `red`
	ColorOrange = `orange`
)

type Event struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
	Color  string `json:"color"`
}

// Color derives the display color from kind and status. The mapping is
// total: anything that is not availability renders as a meeting, and any
// meeting status outside accepted/declined renders as pending.
func Color(kind models.Kind, status models.Status) string {
	if kind == models.KindAvailability {
		return ColorGreen
	}
	switch status {
	case models.StatusAccepted:
		return ColorBlue
	case models.StatusDeclined:
		return ColorRed
	default:
		return ColorOrange
	}
}

func ToDisplay(e models.Event) Event {
	return Event{
		ID:     e.ID,
		Title:  e.Title,
		Start:  e.Start,
		AllDay: e.AllDay,
		Color:  Color(e.Kind, e.Status),
	}
}

// Project derives one calendar view from the whole snapshot: availability
// slots, pending and declined requests, confirmed meetings and the events
// the calendar surface manages directly.
func Project(snap models.Snapshot) []Event {
	events := make([]Event, 0, len(snap.Slots)+len(snap.PendingRequests)+len(snap.ConfirmedMeetings)+len(snap.Events))
	for _, slot := range snap.Slots {
		events = append(events, ToDisplay(models.Event{
			ID:    slot.ID,
			Title: "Available",
			Start: slot.Date + " " + slot.Time,
			Kind:  models.KindAvailability,
		}))
	}
	for _, req := range snap.PendingRequests {
		events = append(events, ToDisplay(models.Event{
			ID:     req.ID,
			Title:  fmt.Sprintf("Meeting with %s", req.From),
			Start:  req.Date + " " + req.Time,
			Kind:   models.KindMeeting,
			Status: req.Status,
		}))
	}
	for _, m := range snap.ConfirmedMeetings {
		events = append(events, ToDisplay(models.Event{
			ID:     m.ID,
			Title:  fmt.Sprintf("Meeting with %s", m.From),
			Start:  m.Date + " " + m.Time,
			Kind:   models.KindMeeting,
			Status: models.StatusAccepted,
		}))
	}
	for _, e := range snap.Events {
		events = append(events, ToDisplay(e))
	}
	return events
}
