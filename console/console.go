// Package console is the framework's logger. Components and the router log through the
// Log/Warn/Error helpers; the output target depends on the build (browser console in wasm,
// stderr natively).
package console

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05",
		PadLevelText:     true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	l.SetLevel(logrus.InfoLevel)
	configureOutput(l)
	return l
}

// Logger exposes the underlying logrus logger for integrations such as HTTP middleware.
func Logger() *logrus.Logger {
	return logger
}

// SetLevel parses a level name ("debug", "info", "warn", "error") and applies it.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// WithFields returns an entry carrying structured fields.
func WithFields(fields map[string]any) *logrus.Entry {
	return logger.WithFields(logrus.Fields(fields))
}

func Debug(args ...any) {
	logger.Debugln(args...)
}

func Log(args ...any) {
	logger.Infoln(args...)
}

func Warn(args ...any) {
	logger.Warnln(args...)
}

func Error(args ...any) {
	logger.Errorln(args...)
}
