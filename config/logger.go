package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger from the log section.
func NewLogger(cfg LogConfig) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
