package util

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// exit is replaced in tests.
var exit = os.Exit

var logger = NewLogger(zapcore.NewCore(
	zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
	zapcore.Lock(os.Stderr),
	logLevel,
))

// exitHook runs after a fatal entry has been written.
type exitHook struct{}

func (exitHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {
	exit(1)
}

// NewLogger builds a logger over core whose Fatal goes through the
// package exit function.
func NewLogger(core zapcore.Core) *zap.Logger {
	return zap.New(core, zap.WithFatalHook(exitHook{}))
}

// Level is the level shared by the default logger; EnableTrace lowers it.
func Level() zap.AtomicLevel {
	return logLevel
}

func Logger() *zap.Logger {
	return logger
}

func SetLogger(l *zap.Logger) {
	logger = l
}

func EnableTrace() {
	logLevel.SetLevel(zapcore.DebugLevel)
}

func DisableTrace() {
	logLevel.SetLevel(zapcore.InfoLevel)
}

func TraceEnabled() bool {
	return logLevel.Enabled(zapcore.DebugLevel)
}

func Trace(format string, v ...interface{}) {
	if TraceEnabled() {
		logger.Debug(fmt.Sprintf(format, v...))
	}
}

// Fatal logs the message and terminates the process.
func Fatal(format string, v ...interface{}) {
	logger.Fatal(fmt.Sprintf(format, v...))
}
