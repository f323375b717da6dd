package logger

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	global       atomic.Pointer[AppLogger]
	fallback     *AppLogger
	fallbackOnce sync.Once
)

// SetGlobalLogger installs the logger used by the package-level helpers.
// Passing nil restores the stdout fallback.
func SetGlobalLogger(l *AppLogger) {
	global.Store(l)
}

// GetGlobalLogger returns the installed logger, or an info-level JSON logger
// on stdout when none is set
func GetGlobalLogger() *AppLogger {
	if l := global.Load(); l != nil {
		return l
	}
	fallbackOnce.Do(func() {
		fallback, _ = NewAppLogger(Config{Level: "info"})
	})
	return fallback
}

func entry(fields []Field) *logrus.Entry {
	return GetGlobalLogger().WithFields(toLogrusFields(fields))
}

func Debug(msg string, fields ...Field) { entry(fields).Debug(msg) }

func Info(msg string, fields ...Field) { entry(fields).Info(msg) }

func Warn(msg string, fields ...Field) { entry(fields).Warn(msg) }

func Error(msg string, fields ...Field) { entry(fields).Error(msg) }

// Fatal logs and exits the process
func Fatal(msg string, fields ...Field) { entry(fields).Fatal(msg) }
