package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type LoggerAdapter struct {
	log *logrus.Logger
}

// NewLoggerAdapter logs JSON in production and text elsewhere.
func NewLoggerAdapter(env, level string) *LoggerAdapter {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return &LoggerAdapter{log: log}
}

// NewWithWriter is used by tests to capture output.
func NewWithWriter(w io.Writer) *LoggerAdapter {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return &LoggerAdapter{log: log}
}

func (l *LoggerAdapter) entry(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}
