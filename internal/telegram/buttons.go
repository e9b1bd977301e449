package telegram

import tele "gopkg.in/telebot.v3"

func (t *Telegram) initButtons() {
	browse.Inline(
		browse.Row(slotsBtn),
		browse.Row(requestsBtn),
		browse.Row(meetingsBtn))
}

var (
	browse      = &tele.ReplyMarkup{}
	slotsBtn    = browse.Data("Open slots", "slots")
	requestsBtn = browse.Data("Meeting requests", "requests")
	meetingsBtn = browse.Data("Confirmed meetings", "meetings")
)
