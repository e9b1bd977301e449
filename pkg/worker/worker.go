// Package worker runs the meeting reminder loop: confirmed meetings that
// start within the horizon get one notification each.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pitchmate/meetslots/pkg/models"
)

type Store interface {
	MeetingsToRemind(ctx context.Context, until time.Time) []models.Meeting
	MarkNotified(ctx context.Context, meetingID int) error
}

type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type Worker struct {
	log      *logrus.Entry
	store    Store
	notifier Notifier
	interval time.Duration
	horizon  time.Duration
}

func New(log *logrus.Logger, store Store, notifier Notifier, interval, horizon time.Duration) *Worker {
	return &Worker{
		log:      log.WithField("component", "worker"),
		store:    store,
		notifier: notifier,
		interval: interval,
		horizon:  horizon,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	w.log.Infof("reminder worker started, interval %s, horizon %s", w.interval, w.horizon)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("reminder worker stopped")
			return
		case <-ticker.C:
			if err := w.remind(ctx, time.Now()); err != nil {
				w.log.Errorf("err sending reminders: %v", err)
			}
		}
	}
}

func (w *Worker) remind(ctx context.Context, now time.Time) error {
	for _, m := range w.store.MeetingsToRemind(ctx, now.Add(w.horizon)) {
		msg := fmt.Sprintf("Upcoming meeting with %s at %s %s", m.From, m.Date, m.Time)
		if err := w.notifier.Notify(ctx, msg); err != nil {
			return fmt.Errorf("err notifying about meeting %d: %w", m.ID, err)
		}
		if err := w.store.MarkNotified(ctx, m.ID); err != nil {
			return fmt.Errorf("err marking meeting %d notified: %w", m.ID, err)
		}
	}
	return nil
}
