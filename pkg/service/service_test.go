package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchmate/meetslots/pkg/display"
	"github.com/pitchmate/meetslots/pkg/logger"
	"github.com/pitchmate/meetslots/pkg/memstore"
	"github.com/pitchmate/meetslots/pkg/models"
)

type recordingNotifier struct {
	messages []string
	err      error
}

func (n *recordingNotifier) Notify(_ context.Context, message string) error {
	n.messages = append(n.messages, message)
	return n.err
}

func newTestService(t *testing.T) (*ScheduleService, *recordingNotifier) {
	t.Helper()
	log := logger.New("error")
	n := &recordingNotifier{}
	return NewScheduleService(log, memstore.New(log), n), n
}

func TestSubmitRequestNotifies(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	req, err := svc.SubmitRequest(ctx, "Investor A", "2025-08-25", "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, req.Status)
	require.Len(t, n.messages, 1)
	assert.Equal(t, "New meeting request from Investor A for 2025-08-25 at 10:00 AM", n.messages[0])
}

func TestSubmitRequestInvalid(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	_, err := svc.SubmitRequest(ctx, "Investor A", "", "10:00 AM")
	assert.ErrorIs(t, err, memstore.ErrValidation)
	assert.Empty(t, n.messages)
}

func TestDecideNotifies(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	req, err := svc.SubmitRequest(ctx, "Investor A", "2025-08-25", "10:00 AM")
	require.NoError(t, err)

	updated, err := svc.Decide(ctx, req.ID, models.DecisionAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	require.Len(t, n.messages, 2)
	assert.Equal(t, "Meeting request from Investor A was accepted", n.messages[1])

	meetings := svc.Meetings(ctx)
	require.Len(t, meetings, 1)
	assert.Equal(t, req.ID, meetings[0].ID)
}

func TestDecideNotFoundSkipsNotification(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	_, err := svc.Decide(ctx, 42, models.DecisionDeclined)
	assert.ErrorIs(t, err, memstore.ErrRequestNotFound)
	assert.Empty(t, n.messages)
}

func TestNotifierFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)
	n.err = errors.New("boom")

	req, err := svc.SubmitRequest(ctx, "Investor A", "2025-08-25", "10:00 AM")
	require.NoError(t, err)
	require.Len(t, svc.Requests(ctx), 1)
	assert.Equal(t, req.ID, svc.Requests(ctx)[0].ID)
}

func TestCalendarProjection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	slot, err := svc.AddSlot(ctx, "2025-09-01", "09:00")
	require.NoError(t, err)
	req, err := svc.SubmitRequest(ctx, "Investor B", "2025-08-26", "2:00 PM")
	require.NoError(t, err)

	calendar := svc.Calendar(ctx)
	require.Len(t, calendar, 2)
	assert.Equal(t, slot.ID, calendar[0].ID)
	assert.Equal(t, display.ColorGreen, calendar[0].Color)
	assert.Equal(t, req.ID, calendar[1].ID)
	assert.Equal(t, display.ColorOrange, calendar[1].Color)
}

func TestCalendarICS(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddSlot(ctx, "2025-09-01", "09:00")
	require.NoError(t, err)
	req, err := svc.SubmitRequest(ctx, "Investor A", "2025-08-25", "10:00 AM")
	require.NoError(t, err)
	_, err = svc.Decide(ctx, req.ID, models.DecisionAccepted)
	require.NoError(t, err)

	out, err := svc.CalendarICS(ctx)
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "Meeting with Investor A")
}
