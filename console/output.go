//go:build !wasm
// +build !wasm

package console

import (
	"os"

	"github.com/sirupsen/logrus"
)

func configureOutput(l *logrus.Logger) {
	l.SetOutput(os.Stderr)
}
