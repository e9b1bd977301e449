package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchmate/meetslots/pkg/models"
)

func TestColorTotal(t *testing.T) {
	assert.Equal(t, ColorGreen, Color(models.KindAvailability, ""))
	assert.Equal(t, ColorGreen, Color(models.KindAvailability, models.StatusDeclined))
	assert.Equal(t, ColorBlue, Color(models.KindMeeting, models.StatusAccepted))
	assert.Equal(t, ColorRed, Color(models.KindMeeting, models.StatusDeclined))
	assert.Equal(t, ColorOrange, Color(models.KindMeeting, models.StatusPending))
	assert.Equal(t, ColorOrange, Color(models.KindMeeting, models.Status("unknown")))
	assert.Equal(t, ColorOrange, Color(models.KindMeeting, ""))
}

func TestToDisplayPure(t *testing.T) {
	event := models.Event{ID: 7, Title: "Pitch", Start: "2025-09-03 10:00 AM", AllDay: true, Kind: models.KindMeeting, Status: models.StatusAccepted}
	first := ToDisplay(event)
	second := ToDisplay(event)
	assert.Equal(t, first, second)
	assert.Equal(t, Event{ID: 7, Title: "Pitch", Start: "2025-09-03 10:00 AM", AllDay: true, Color: ColorBlue}, first)
}

func TestProject(t *testing.T) {
	snap := models.Snapshot{
		Slots: []models.AvailabilitySlot{
			{ID: 1, Date: "2025-09-01", Time: "09:00"},
		},
		PendingRequests: []models.MeetingRequest{
			{ID: 2, From: "Investor A", Date: "2025-08-25", Time: "10:00 AM", Status: models.StatusPending},
			{ID: 3, From: "Investor B", Date: "2025-08-26", Time: "2:00 PM", Status: models.StatusDeclined},
		},
		ConfirmedMeetings: []models.Meeting{
			{ID: 4, From: "Investor C", Date: "2025-08-27", Time: "11:00 AM"},
		},
		Events: []models.Event{
			{ID: 5, Title: "Offsite", Start: "2025-09-05", AllDay: true, Kind: models.KindMeeting, Status: models.StatusPending},
		},
	}

	events := Project(snap)
	require.Len(t, events, 5)
	assert.Equal(t, Event{ID: 1, Title: "Available", Start: "2025-09-01 09:00", Color: ColorGreen}, events[0])
	assert.Equal(t, ColorOrange, events[1].Color)
	assert.Equal(t, "Meeting with Investor A", events[1].Title)
	assert.Equal(t, ColorRed, events[2].Color)
	assert.Equal(t, ColorBlue, events[3].Color)
	assert.Equal(t, Event{ID: 5, Title: "Offsite", Start: "2025-09-05", AllDay: true, Color: ColorOrange}, events[4])

	// projection is a pure read, the snapshot order fully determines output
	assert.Equal(t, events, Project(snap))
}

func TestICS(t *testing.T) {
	snap := models.Snapshot{
		Slots: []models.AvailabilitySlot{
			{ID: 1, Date: "2025-09-01", Time: "09:00", CreatedAt: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
		},
		ConfirmedMeetings: []models.Meeting{
			{
				ID:          2,
				From:        "Investor A",
				Date:        "2025-08-25",
				Time:        "10:00 AM",
				StartAt:     time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC),
				ConfirmedAt: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	out, err := ICS(snap)
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "slot-1@meetslots")
	assert.Contains(t, out, "meeting-2@meetslots")
	assert.Contains(t, out, "SUMMARY:Meeting with Investor A")
	assert.Contains(t, out, "SUMMARY:Available")
}

func TestICSBadSlot(t *testing.T) {
	snap := models.Snapshot{
		Slots: []models.AvailabilitySlot{{ID: 1, Date: "bad", Time: "09:00"}},
	}
	_, err := ICS(snap)
	require.Error(t, err)
}
