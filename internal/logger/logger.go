package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process-wide structured logger. Level comes from
// LOG_LEVEL (logrus names: trace, debug, info, warn, error); anything
// unparseable falls back to info.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}
