package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pitchmate/meetslots/pkg/display"
	"github.com/pitchmate/meetslots/pkg/models"
)

type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type Store interface {
	AddSlot(ctx context.Context, date, timeOfDay string) (models.AvailabilitySlot, error)
	RemoveSlot(ctx context.Context, id int)
	Slots(ctx context.Context) []models.AvailabilitySlot
	SubmitRequest(ctx context.Context, from, date, timeOfDay string) (models.MeetingRequest, error)
	Requests(ctx context.Context) []models.MeetingRequest
	Decide(ctx context.Context, id int, decision models.Decision) (models.MeetingRequest, error)
	Meetings(ctx context.Context) []models.Meeting
	AddEvent(ctx context.Context, title, start string, allDay bool, kind models.Kind) (models.Event, error)
	EditEvent(ctx context.Context, id int, patch models.EventPatch)
	DeleteEvent(ctx context.Context, id int)
	Events(ctx context.Context) []models.Event
	Snapshot(ctx context.Context) models.Snapshot
}

// ScheduleService glues the store to the notifier: every command goes to
// the store, and the ones another party cares about emit a best-effort
// notification. Notification failures are logged, never propagated.
type ScheduleService struct {
	log      *logrus.Entry
	store    Store
	notifier Notifier
}

func NewScheduleService(log *logrus.Logger, store Store, notifier Notifier) *ScheduleService {
	s := ScheduleService{
		log:      log.WithField("component", "service"),
		store:    store,
		notifier: notifier,
	}
	return &s
}

func (s *ScheduleService) AddSlot(ctx context.Context, date, timeOfDay string) (models.AvailabilitySlot, error) {
	slot, err := s.store.AddSlot(ctx, date, timeOfDay)
	if err != nil {
		return models.AvailabilitySlot{}, fmt.Errorf("err adding slot: %w", err)
	}
	return slot, nil
}

func (s *ScheduleService) RemoveSlot(ctx context.Context, id int) {
	s.store.RemoveSlot(ctx, id)
}

func (s *ScheduleService) Slots(ctx context.Context) []models.AvailabilitySlot {
	return s.store.Slots(ctx)
}

func (s *ScheduleService) SubmitRequest(ctx context.Context, from, date, timeOfDay string) (models.MeetingRequest, error) {
	req, err := s.store.SubmitRequest(ctx, from, date, timeOfDay)
	if err != nil {
		return models.MeetingRequest{}, fmt.Errorf("err submitting request: %w", err)
	}
	msg := fmt.Sprintf("New meeting request from %s for %s at %s", req.From, req.Date, req.Time)
	if err = s.notifier.Notify(ctx, msg); err != nil {
		s.log.Errorf("err notifying about request %d: %v", req.ID, err)
	}
	return req, nil
}

func (s *ScheduleService) Requests(ctx context.Context) []models.MeetingRequest {
	return s.store.Requests(ctx)
}

func (s *ScheduleService) Decide(ctx context.Context, id int, decision models.Decision) (models.MeetingRequest, error) {
	req, err := s.store.Decide(ctx, id, decision)
	if err != nil {
		return models.MeetingRequest{}, fmt.Errorf("err deciding request %d: %w", id, err)
	}
	msg := fmt.Sprintf("Meeting request from %s was %s", req.From, req.Status)
	if err = s.notifier.Notify(ctx, msg); err != nil {
		s.log.Errorf("err notifying about decision on %d: %v", id, err)
	}
	return req, nil
}

func (s *ScheduleService) Meetings(ctx context.Context) []models.Meeting {
	return s.store.Meetings(ctx)
}

func (s *ScheduleService) AddEvent(ctx context.Context, title, start string, allDay bool, kind models.Kind) (models.Event, error) {
	event, err := s.store.AddEvent(ctx, title, start, allDay, kind)
	if err != nil {
		return models.Event{}, fmt.Errorf("err adding event: %w", err)
	}
	return event, nil
}

func (s *ScheduleService) EditEvent(ctx context.Context, id int, patch models.EventPatch) {
	s.store.EditEvent(ctx, id, patch)
}

func (s *ScheduleService) DeleteEvent(ctx context.Context, id int) {
	s.store.DeleteEvent(ctx, id)
}

func (s *ScheduleService) Events(ctx context.Context) []models.Event {
	return s.store.Events(ctx)
}

func (s *ScheduleService) Schedule(ctx context.Context) models.Snapshot {
	return s.store.Snapshot(ctx)
}

func (s *ScheduleService) Calendar(ctx context.Context) []display.Event {
	return display.Project(s.store.Snapshot(ctx))
}

func (s *ScheduleService) CalendarICS(ctx context.Context) (string, error) {
	out, err := display.ICS(s.store.Snapshot(ctx))
	if err != nil {
		return "", fmt.Errorf("err exporting calendar: %w", err)
	}
	return out, nil
}

func (s *ScheduleService) Notify(ctx context.Context, message string) error {
	return s.notifier.Notify(ctx, message)
}
