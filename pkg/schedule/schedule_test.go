package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchmate/meetslots/pkg/models"
)

func TestWhen(t *testing.T) {
	got, err := When("2025-08-25", "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC), got)

	got, err = When("2025-08-26", "2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 26, 14, 0, 0, 0, time.UTC), got)

	// kitchen-style without the space is accepted too
	got, err = When("2025-08-26", "2:00PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 26, 14, 0, 0, 0, time.UTC), got)

	got, err = When("2025-08-26", "14:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 26, 14, 0, 0, 0, time.UTC), got)

	_, err = When("26.08.2025", "14:00")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = When("2025-08-26", "half past two")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestValidateWhen(t *testing.T) {
	require.NoError(t, ValidateWhen("2025-08-25", "2:00 PM"))
	assert.ErrorIs(t, ValidateWhen("", "10:00"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateWhen("2025-08-25", ""), ErrInvalidTime)
	assert.ErrorIs(t, ValidateWhen("2025-08-25", "later"), ErrInvalidTime)
}

func TestApplyAccept(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	req := models.MeetingRequest{ID: 1, From: "Investor A", Date: "2025-08-25", Time: "10:00 AM", Status: models.StatusPending}

	updated, meeting, err := Apply(req, models.DecisionAccepted, now)
	require.NoError(t, err)
	require.NotNil(t, meeting)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.Equal(t, req.ID, meeting.ID)
	assert.Equal(t, req.From, meeting.From)
	assert.Equal(t, req.Date, meeting.Date)
	assert.Equal(t, req.Time, meeting.Time)
	assert.Equal(t, time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC), meeting.StartAt)
	assert.Equal(t, now, meeting.ConfirmedAt)
}

func TestApplyDecline(t *testing.T) {
	req := models.MeetingRequest{ID: 2, From: "Investor B", Date: "2025-08-26", Time: "2:00 PM", Status: models.StatusPending}

	updated, meeting, err := Apply(req, models.DecisionDeclined, time.Now())
	require.NoError(t, err)
	assert.Nil(t, meeting)
	assert.Equal(t, models.StatusDeclined, updated.Status)
}

func TestApplyTerminalStates(t *testing.T) {
	for _, status := range []models.Status{models.StatusAccepted, models.StatusDeclined} {
		req := models.MeetingRequest{ID: 3, Status: status}
		_, _, err := Apply(req, models.DecisionAccepted, time.Now())
		assert.ErrorIs(t, err, ErrNotPending)
	}
}

func TestApplyUnknownDecision(t *testing.T) {
	req := models.MeetingRequest{ID: 4, Status: models.StatusPending}
	_, _, err := Apply(req, models.Decision("maybe"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidDecision)
}
