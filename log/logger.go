/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package log provides structured logging on top of github.com/ssgreg/logf.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/ssgreg/logf"
	"github.com/ssgreg/logftext"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Field is a single structured key-value pair.
type Field = logf.Field

// CloseFunc flushes and closes the underlying channel writer.
type CloseFunc logf.ChannelWriterCloseFunc

// LogFunc logs a message with a bound level.
type LogFunc = logf.LogFunc

// Field constructors.
var (
	Error    = logf.Error
	String   = logf.String
	Strings  = logf.Strings
	Int      = logf.Int
	Int64    = logf.Int64
	Uint64   = logf.Uint64
	Bool     = logf.Bool
	Duration = logf.Duration
	Time     = logf.Time
	Any      = logf.Any
)

// FieldLogger writes messages in a structured format.
type FieldLogger interface {
	With(...Field) FieldLogger

	Debug(string, ...Field)
	Info(string, ...Field)
	Warn(string, ...Field)
	Error(string, ...Field)

	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})

	AtLevel(Level, func(LogFunc))
	WithLevel(level Level) FieldLogger
}

// LogfAdapter adapts *logf.Logger to FieldLogger.
type LogfAdapter struct {
	Logger *logf.Logger
}

// NewDisabledLogger returns a logger that drops everything.
func NewDisabledLogger() FieldLogger {
	return &LogfAdapter{logf.NewDisabledLogger()}
}

// NewLogger creates a logger from the configuration.
// The returned CloseFunc must be called to flush buffered entries.
func NewLogger(cfg *Config) (FieldLogger, CloseFunc) {
	channel, closeFunc := logf.NewChannelWriter(logf.ChannelWriterConfig{
		Appender:          newAppender(cfg),
		EnableSyncOnError: true,
	})
	logger := logf.NewLogger(toLogfLevel(cfg.Level), channel).With(logf.Int("pid", os.Getpid()))
	if cfg.AddCaller {
		logger = logger.WithCaller().WithCallerSkip(1)
	}
	return &LogfAdapter{logger}, CloseFunc(closeFunc)
}

func (l *LogfAdapter) With(fs ...Field) FieldLogger {
	return &LogfAdapter{l.Logger.With(fs...)}
}

func (l *LogfAdapter) Debug(s string, fs ...Field) { l.Logger.Debug(s, fs...) }
func (l *LogfAdapter) Info(s string, fs ...Field)  { l.Logger.Info(s, fs...) }
func (l *LogfAdapter) Warn(s string, fs ...Field)  { l.Logger.Warn(s, fs...) }
func (l *LogfAdapter) Error(s string, fs ...Field) { l.Logger.Error(s, fs...) }

func (l *LogfAdapter) Debugf(format string, args ...interface{}) { l.logf(LevelDebug, format, args...) }
func (l *LogfAdapter) Infof(format string, args ...interface{})  { l.logf(LevelInfo, format, args...) }
func (l *LogfAdapter) Warnf(format string, args ...interface{})  { l.logf(LevelWarn, format, args...) }
func (l *LogfAdapter) Errorf(format string, args ...interface{}) { l.logf(LevelError, format, args...) }

func (l *LogfAdapter) logf(level Level, format string, args ...interface{}) {
	l.AtLevel(level, func(write LogFunc) {
		write(fmt.Sprintf(format, args...))
	})
}

// AtLevel calls fn only if the level is enabled.
func (l *LogfAdapter) AtLevel(level Level, fn func(LogFunc)) {
	l.Logger.AtLevel(toLogfLevel(level), fn)
}

// WithLevel returns a logger that additionally drops messages below the level.
func (l *LogfAdapter) WithLevel(level Level) FieldLogger {
	return &LogfAdapter{l.Logger.WithLevel(toLogfLevel(level))}
}

func toLogfLevel(level Level) logf.Level {
	switch level {
	case LevelError:
		return logf.LevelError
	case LevelWarn:
		return logf.LevelWarn
	case LevelDebug:
		return logf.LevelDebug
	}
	return logf.LevelInfo
}

func newAppender(cfg *Config) logf.Appender {
	var w io.Writer = os.Stdout
	switch cfg.Output {
	case OutputStderr:
		w = os.Stderr
	case OutputFile:
		w = &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.Rotation.MaxSizeMB,
			MaxBackups: cfg.File.Rotation.MaxBackups,
			Compress:   cfg.File.Rotation.Compress,
		}
	}
	return newAppenderWithWriter(cfg, w)
}

func newAppenderWithWriter(cfg *Config, w io.Writer) logf.Appender {
	if cfg.Format == FormatText {
		noColor := cfg.NoColor
		return logftext.NewAppender(w, logftext.EncoderConfig{
			NoColor:    &noColor,
			EncodeTime: logf.RFC3339NanoTimeEncoder,
		})
	}
	return logf.NewWriteAppender(w, logf.NewJSONEncoder(logf.JSONEncoderConfig{
		EncodeTime:   logf.RFC3339NanoTimeEncoder,
		FieldKeyTime: "time",
	}))
}
