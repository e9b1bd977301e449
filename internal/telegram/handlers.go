package telegram

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"
)

const cmdStart = "/start"

func (t *Telegram) initHandlers() {
	t.bot.Handle(cmdStart, t.startHandler)
	t.bot.Handle(&slotsBtn, t.slotsHandler)
	t.bot.Handle(&requestsBtn, t.requestsHandler)
	t.bot.Handle(&meetingsBtn, t.meetingsHandler)
}

func (t *Telegram) startHandler(ctx tele.Context) error {
	msg := "Here is your schedule. Pick what to look at."
	return ctx.Send(msg, browse)
}

func (t *Telegram) slotsHandler(ctx tele.Context) error {
	snap := t.app.Schedule(context.Background())
	if len(snap.Slots) == 0 {
		return ctx.Edit("No open slots.", browse)
	}
	var b strings.Builder
	b.WriteString("Open slots:\n")
	for _, slot := range snap.Slots {
		fmt.Fprintf(&b, "- %s at %s\n", slot.Date, slot.Time)
	}
	return ctx.Edit(b.String(), browse)
}

func (t *Telegram) requestsHandler(ctx tele.Context) error {
	snap := t.app.Schedule(context.Background())
	if len(snap.PendingRequests) == 0 {
		return ctx.Edit("No meeting requests.", browse)
	}
	var b strings.Builder
	b.WriteString("Meeting requests:\n")
	for _, req := range snap.PendingRequests {
		fmt.Fprintf(&b, "- %s on %s at %s (%s)\n", req.From, req.Date, req.Time, req.Status)
	}
	return ctx.Edit(b.String(), browse)
}

func (t *Telegram) meetingsHandler(ctx tele.Context) error {
	snap := t.app.Schedule(context.Background())
	if len(snap.ConfirmedMeetings) == 0 {
		return ctx.Edit("No confirmed meetings yet.", browse)
	}
	var b strings.Builder
	b.WriteString("Confirmed meetings:\n")
	for _, m := range snap.ConfirmedMeetings {
		fmt.Fprintf(&b, "- %s on %s at %s\n", m.From, m.Date, m.Time)
	}
	return ctx.Edit(b.String(), browse)
}
