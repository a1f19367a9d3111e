package app

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"walletgg/internal/domain"
)

// NewLogger builds the process logger from the level and format settings.
func NewLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(out)
	if level == "" {
		level = "warning"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	l.SetLevel(lvl)
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l, nil
}

// WriterNotifier prints notifications, one per line, to W.
type WriterNotifier struct {
	W io.Writer
}

// Notify implements domain.Notifier.
func (n WriterNotifier) Notify(msg domain.Notification) {
	prefix := ""
	switch msg.Level {
	case domain.LevelWarning:
		prefix = "warning: "
	case domain.LevelError:
		prefix = "error: "
	}
	fmt.Fprintf(n.W, "%s%s\n", prefix, msg.Message)
}

var _ domain.Notifier = WriterNotifier{}
