// Package memstore holds the scheduling state: availability slots, pending
// meeting requests, confirmed meetings and calendar events. Commands are
// serialized on a single mutex, so observers only ever see state between
// commands, never a half-applied transition.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/pitchmate/meetslots/pkg/metrics"
	"github.com/pitchmate/meetslots/pkg/models"
	"github.com/pitchmate/meetslots/pkg/schedule"
)

var (
	ErrValidation      = fmt.Errorf("validation error")
	ErrRequestNotFound = fmt.Errorf("meeting request not found")
	ErrMeetingNotFound = fmt.Errorf("meeting not found")
)

type Store struct {
	log *logrus.Entry

	mu       sync.Mutex
	nextID   int
	slots    []models.AvailabilitySlot
	requests []models.MeetingRequest
	meetings []models.Meeting
	events   []models.Event
}

func New(log *logrus.Logger) *Store {
	return &Store{
		log: log.WithField("component", "memstore"),
	}
}

func observe(command string) func(err error) {
	timer := prometheus.NewTimer(metrics.StoreDuration.WithLabelValues(command))
	return func(err error) {
		timer.ObserveDuration()
		if err != nil {
			metrics.StoreErrCount.WithLabelValues(command).Inc()
		}
	}
}

// newID mints a store-lifetime unique id. Callers must hold mu.
func (s *Store) newID() int {
	s.nextID++
	return s.nextID
}

func (s *Store) AddSlot(ctx context.Context, date, timeOfDay string) (slot models.AvailabilitySlot, err error) {
	done := observe("add_slot")
	defer func() { done(err) }()
	if err = schedule.ValidateWhen(date, timeOfDay); err != nil {
		return models.AvailabilitySlot{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slot = models.AvailabilitySlot{
		ID:        s.newID(),
		Date:      date,
		Time:      timeOfDay,
		CreatedAt: time.Now(),
	}
	s.slots = append(s.slots, slot)
	s.log.Debugf("slot %d added for %s %s", slot.ID, date, timeOfDay)
	return slot, nil
}

// RemoveSlot deletes the slot with the given id. Removing an unknown id is
// a no-op, so the command is idempotent.
func (s *Store) RemoveSlot(ctx context.Context, id int) {
	defer observe("remove_slot")(nil)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, slot := range s.slots {
		if slot.ID == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

func (s *Store) Slots(ctx context.Context) []models.AvailabilitySlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AvailabilitySlot(nil), s.slots...)
}

func (s *Store) SubmitRequest(ctx context.Context, from, date, timeOfDay string) (req models.MeetingRequest, err error) {
	done := observe("submit_request")
	defer func() { done(err) }()
	if err = schedule.ValidateWhen(date, timeOfDay); err != nil {
		return models.MeetingRequest{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	req = models.MeetingRequest{
		ID:        s.newID(),
		From:      from,
		Date:      date,
		Time:      timeOfDay,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	s.requests = append(s.requests, req)
	s.log.Debugf("request %d from %q for %s %s", req.ID, from, date, timeOfDay)
	return req, nil
}

func (s *Store) Requests(ctx context.Context) []models.MeetingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MeetingRequest(nil), s.requests...)
}

// Decide applies an accept or decline to the pending request with the given
// id. Accepting promotes the request into the confirmed meetings and drops
// it from the pending collection in the same step; declining flips the
// status in place and the request stays listed. Requests that already left
// pending are treated as not found.
func (s *Store) Decide(ctx context.Context, id int, decision models.Decision) (req models.MeetingRequest, err error) {
	done := observe("decide")
	defer func() { done(err) }()
	if decision != models.DecisionAccepted && decision != models.DecisionDeclined {
		return models.MeetingRequest{}, fmt.Errorf("%w: decision %q", ErrValidation, decision)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.requests {
		if r.ID != id || r.Status != models.StatusPending {
			continue
		}
		updated, meeting, aerr := schedule.Apply(r, decision, time.Now())
		if aerr != nil {
			err = fmt.Errorf("deciding request %d: %w", id, aerr)
			return models.MeetingRequest{}, err
		}
		if meeting != nil {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			s.meetings = append(s.meetings, *meeting)
		} else {
			s.requests[i] = updated
		}
		s.log.Infof("request %d %s", id, updated.Status)
		return updated, nil
	}
	err = fmt.Errorf("%w: id %d", ErrRequestNotFound, id)
	return models.MeetingRequest{}, err
}

func (s *Store) Meetings(ctx context.Context) []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Meeting(nil), s.meetings...)
}

func (s *Store) AddEvent(ctx context.Context, title, start string, allDay bool, kind models.Kind) (event models.Event, err error) {
	done := observe("add_event")
	defer func() { done(err) }()
	if title == "" || start == "" {
		err = fmt.Errorf("%w: empty title or start", ErrValidation)
		return models.Event{}, err
	}
	if kind != models.KindAvailability && kind != models.KindMeeting {
		err = fmt.Errorf("%w: kind %q", ErrValidation, kind)
		return models.Event{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	event = models.Event{
		ID:     s.newID(),
		Title:  title,
		Start:  start,
		AllDay: allDay,
		Kind:   kind,
	}
	if kind == models.KindMeeting {
		event.Status = models.StatusPending
	}
	s.events = append(s.events, event)
	return event, nil
}

// EditEvent replaces the patched fields of the matching event. Unknown ids
// are ignored, matching the calendar surface's leniency. Status patches on
// availability events are dropped since status only applies to meetings.
func (s *Store) EditEvent(ctx context.Context, id int, patch models.EventPatch) {
	defer observe("edit_event")(nil)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Start != nil {
			e.Start = *patch.Start
		}
		if patch.AllDay != nil {
			e.AllDay = *patch.AllDay
		}
		if patch.Status != nil && e.Kind == models.KindMeeting {
			e.Status = *patch.Status
		}
		s.events[i] = e
		return
	}
}

// DeleteEvent removes the matching event, silently ignoring unknown ids.
func (s *Store) DeleteEvent(ctx context.Context, id int) {
	defer observe("delete_event")(nil)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return
		}
	}
}

func (s *Store) Events(ctx context.Context) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Event(nil), s.events...)
}

// Snapshot copies every collection under one lock acquisition.
func (s *Store) Snapshot(ctx context.Context) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Snapshot{
		Slots:             append([]models.AvailabilitySlot(nil), s.slots...),
		PendingRequests:   append([]models.MeetingRequest(nil), s.requests...),
		ConfirmedMeetings: append([]models.Meeting(nil), s.meetings...),
		Events:            append([]models.Event(nil), s.events...),
	}
}

// MeetingsToRemind lists confirmed meetings starting before the given time
// that have not been notified yet.
func (s *Store) MeetingsToRemind(ctx context.Context, until time.Time) []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []models.Meeting
	for _, m := range s.meetings {
		if !m.Notified && m.StartAt.Before(until) {
			due = append(due, m)
		}
	}
	return due
}

func (s *Store) MarkNotified(ctx context.Context, meetingID int) error {
	var err error
	done := observe("mark_notified")
	defer func() { done(err) }()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.meetings {
		if s.meetings[i].ID == meetingID {
			s.meetings[i].Notified = true
			return nil
		}
	}
	err = fmt.Errorf("%w: id %d", ErrMeetingNotFound, meetingID)
	return err
}

// Reset drops every collection. Ids keep growing, so records created after
// a reset never collide with earlier ones.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = nil
	s.requests = nil
	s.meetings = nil
	s.events = nil
}
