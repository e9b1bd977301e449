package display

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pitchmate/meetslots/pkg/models"
	"github.com/pitchmate/meetslots/pkg/schedule"
)

const slotDuration = time.Hour

// ICS renders confirmed meetings and open availability as an iCalendar
// feed. Date/time strings were validated when the records were created, so
// an unparseable record here is a programming error worth surfacing.
func ICS(snap models.Snapshot) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, slot := range snap.Slots {
		start, err := schedule.When(slot.Date, slot.Time)
		if err != nil {
			return "", fmt.Errorf("slot %d: %w", slot.ID, err)
		}
		ev := cal.AddEvent(fmt.Sprintf("slot-%d@meetslots", slot.ID))
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(slotDuration))
		ev.SetSummary("Available")
		ev.SetDtStampTime(slot.CreatedAt)
	}
	for _, m := range snap.ConfirmedMeetings {
		ev := cal.AddEvent(fmt.Sprintf("meeting-%d@meetslots", m.ID))
		ev.SetStartAt(m.StartAt)
		ev.SetEndAt(m.StartAt.Add(slotDuration))
		ev.SetSummary(fmt.Sprintf("Meeting with %s", m.From))
		ev.SetDtStampTime(m.ConfirmedAt)
	}
	return cal.Serialize(), nil
}
