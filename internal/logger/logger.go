package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	mu   sync.RWMutex
	base = newBase(os.Stdout, FormatConsole).Level(zerolog.InfoLevel)
)

// Log is a leveled logger. The zero value is not usable, call New.
type Log struct {
	zl  zerolog.Logger
	err error
}

func newBase(out io.Writer, format string) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).With().Timestamp().Str("service", "puravida").Logger()
}

// Configure replaces the process-wide output, format and level used by New.
func Configure(level, format string, out io.Writer) {
	l := newBase(out, format).Level(ParseLevel(level))
	mu.Lock()
	base = l
	mu.Unlock()
}

// ParseLevel maps a level name to zerolog, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(s); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.InfoLevel
}

func New() *Log {
	mu.RLock()
	defer mu.RUnlock()
	return &Log{zl: base}
}

func (l *Log) SetLevel(level LogLevel) {
	l.zl = l.zl.Level(ParseLevel(string(level)))
}

func (l *Log) WithError(err error) *Log {
	return &Log{zl: l.zl, err: err}
}

func (l *Log) WithField(key string, value any) *Log {
	return &Log{zl: l.zl.With().Interface(key, value).Logger(), err: l.err}
}

func (l *Log) event(e *zerolog.Event) *zerolog.Event {
	if l.err != nil {
		e = e.Err(l.err)
	}
	return e
}

func (l *Log) Debug(msg string) {
	l.event(l.zl.Debug()).Msg(msg)
}

func (l *Log) Info(msg string) {
	l.event(l.zl.Info()).Msg(msg)
}

func (l *Log) Warn(msg string) {
	l.event(l.zl.Warn()).Msg(msg)
}

func (l *Log) Error(msg string) {
	l.event(l.zl.Error()).Msg(msg)
}
