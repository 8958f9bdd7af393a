// Package logging adapts the Wails logger to the configured log level.
package logging

import (
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// LevelLogger drops messages below Level before they reach the wrapped
// logger. Print and Fatal always pass through.
type LevelLogger struct {
	inner logger.Logger
	level logger.LogLevel
}

func NewLevelLogger(inner logger.Logger, level logger.LogLevel) *LevelLogger {
	if level == 0 {
		level = logger.INFO
	}
	return &LevelLogger{inner: inner, level: level}
}

func (l *LevelLogger) Level() logger.LogLevel {
	return l.level
}

func (l *LevelLogger) enabled(level logger.LogLevel) bool {
	return level >= l.level
}

func (l *LevelLogger) Print(message string) { l.inner.Print(message) }

func (l *LevelLogger) Trace(message string) {
	if l.enabled(logger.TRACE) {
		l.inner.Trace(message)
	}
}

func (l *LevelLogger) Debug(message string) {
	if l.enabled(logger.DEBUG) {
		l.inner.Debug(message)
	}
}

func (l *LevelLogger) Info(message string) {
	if l.enabled(logger.INFO) {
		l.inner.Info(message)
	}
}

func (l *LevelLogger) Warning(message string) {
	if l.enabled(logger.WARNING) {
		l.inner.Warning(message)
	}
}

func (l *LevelLogger) Error(message string) {
	if l.enabled(logger.ERROR) {
		l.inner.Error(message)
	}
}

func (l *LevelLogger) Fatal(message string) { l.inner.Fatal(message) }
