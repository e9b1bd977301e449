// Package schedule holds the pure scheduling rules: date/time validation and
// the request decision transition. Nothing here touches shared state.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/pitchmate/meetslots/pkg/models"
)

const dateLayout = "2006-01-02"

// timeLayouts covers the forms the demo produces: "10:00 AM" from the
// seeded requests (with or without the space before the meridiem) and
// "15:04" from the time picker.
var timeLayouts = []string{"3:04 PM", time.Kitchen, "15:04"}

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidDecision = errors.New("invalid decision")
	ErrNotPending      = errors.New("request is not pending")
)

// When parses a slot or request date and time into a single point in time.
func When(date, timeOfDay string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, timeOfDay)
		if err != nil {
			continue
		}
		return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, timeOfDay)
}

// ValidateWhen rejects empty or unparseable date/time pairs.
func ValidateWhen(date, timeOfDay string) error {
	if date == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	if timeOfDay == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	_, err := When(date, timeOfDay)
	return err
}

// Apply computes the decision transition for a request. Accepting returns
// the promoted meeting alongside the updated request; declining only flips
// the status. Requests that already left pending cannot transition again.
func Apply(req models.MeetingRequest, decision models.Decision, now time.Time) (models.MeetingRequest, *models.Meeting, error) {
	if decision != models.DecisionAccepted && decision != models.DecisionDeclined {
		return req, nil, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}
	if req.Status != models.StatusPending {
		return req, nil, fmt.Errorf("%w: %d", ErrNotPending, req.ID)
	}
	if decision == models.DecisionDeclined {
		req.Status = models.StatusDeclined
		return req, nil, nil
	}
	req.Status = models.StatusAccepted
	startAt, err := When(req.Date, req.Time)
	if err != nil {
		return req, nil, err
	}
	meeting := models.Meeting{
		ID:          req.ID,
		From:        req.From,
		Date:        req.Date,
		Time:        req.Time,
		StartAt:     startAt,
		ConfirmedAt: now,
	}
	return req, &meeting, nil
}
