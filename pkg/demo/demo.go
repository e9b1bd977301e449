// Package demo seeds the schedule the way the meetings page starts out.
package demo

import (
	"context"
	"fmt"

	"github.com/pitchmate/meetslots/pkg/models"
)

type Store interface {
	SubmitRequest(ctx context.Context, from, date, timeOfDay string) (models.MeetingRequest, error)
}

// Seed pre-populates two pending meeting requests. It goes straight to the
// store so seeding does not trigger notifications.
func Seed(ctx context.Context, store Store) error {
	seeds := []struct {
		from string
		date string
		time string
	}{
		{"Investor A", "2025-08-25", "10:00 AM"},
		{"Investor B", "2025-08-26", "2:00 PM"},
	}
	for _, s := range seeds {
		if _, err := store.SubmitRequest(ctx, s.from, s.date, s.time); err != nil {
			return fmt.Errorf("err seeding request from %s: %w", s.from, err)
		}
	}
	return nil
}
