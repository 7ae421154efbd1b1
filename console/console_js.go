//go:build js || wasm

package console

import (
	"io"
	"strings"
	"syscall/js"

	"github.com/sirupsen/logrus"
)

// browserHook forwards entries to the browser console method matching their level.
type browserHook struct {
	formatter logrus.Formatter
}

func (h *browserHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *browserHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	method := "log"
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		method = "debug"
	case logrus.WarnLevel:
		method = "warn"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		method = "error"
	}

	js.Global().Get("console").Call(method, strings.TrimRight(string(line), "\n"))
	return nil
}

func configureOutput(l *logrus.Logger) {
	l.SetOutput(io.Discard)
	l.AddHook(&browserHook{formatter: &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}})
}
