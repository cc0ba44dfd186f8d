package league

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewLogger builds a structured logger. format is "json" or "text"; an unknown level
// falls back to info with a warning.
func NewLogger(level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(parsed)
	} else {
		log.SetLevel(logrus.InfoLevel)
		if level != "" {
			log.WithField("invalid_level", level).Warn("Invalid log level, using INFO")
		}
	}

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return log
}

// DiscardLogger returns a logger that writes nothing, for tests and quiet batch runs.
func DiscardLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

// WithRun tags a logger with a fresh run identifier and the seed that drives it.
func WithRun(log logrus.FieldLogger, seed int64) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"seed":   seed,
	})
}
