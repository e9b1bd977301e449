package notifier

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogNotifier writes notifications to the log. It stands in wherever no
// real delivery channel is configured.
type LogNotifier struct {
	log *logrus.Entry
}

func New(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{
		log: log.WithField("component", "notifier"),
	}
}

func (n *LogNotifier) Notify(_ context.Context, message string) error {
	n.log.Infof("notification: %s", message)
	return nil
}
