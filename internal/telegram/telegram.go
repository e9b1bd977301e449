package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v3"

	"github.com/pitchmate/meetslots/pkg/models"
)

// App is the read side the bot needs: it only browses the schedule,
// commands stay on the HTTP surface.
type App interface {
	Schedule(ctx context.Context) models.Snapshot
}

type Telegram struct {
	log *logrus.Entry
	bot *tele.Bot
	app App
}

// Notifier delivers schedule notifications to the owner's chat.
type Notifier struct {
	log    *logrus.Entry
	bot    *tele.Bot
	chatID int64
}

// ParseChatID reads the owner's chat id from its env form. An unset or
// malformed value is an error so callers can fall back to another notifier
// instead of sending into chat 0.
func ParseChatID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("chat id is empty")
	}
	chatID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chat id %q: %w", raw, err)
	}
	return chatID, nil
}

func NewBot(token string) (*tele.Bot, error) {
	config := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(config)
	if err != nil {
		return nil, fmt.Errorf("new bot faild: %w", err)
	}
	return b, nil
}

func New(log *logrus.Logger, bot *tele.Bot, app App) *Telegram {
	t := Telegram{
		log: log.WithField("component", "telegram"),
		bot: bot,
		app: app,
	}
	t.initButtons()
	t.initHandlers()
	return &t
}

func NewNotifier(log *logrus.Logger, bot *tele.Bot, chatID int64) *Notifier {
	return &Notifier{
		log:    log.WithField("component", "notifier"),
		bot:    bot,
		chatID: chatID,
	}
}

func (n *Notifier) Notify(_ context.Context, message string) error {
	if _, err := n.bot.Send(tele.ChatID(n.chatID), message); err != nil {
		return fmt.Errorf("tg send message faild: %w", err)
	}
	return nil
}

func (t *Telegram) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		t.bot.Stop()
	}()
	t.log.Infof("Starting telegram bot as %v", t.bot.Me.Username)
	t.bot.Start()
}
