package core

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LogLevel is the minimum severity the engine logger reports.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var levelNames = map[string]LogLevel{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
	"fatal": FatalLevel,
}

func (l LogLevel) String() string {
	for name, lvl := range levelNames {
		if lvl == l {
			return name
		}
	}
	return "unknown"
}

// UnmarshalText lets config files spell levels by name.
func (l *LogLevel) UnmarshalText(text []byte) error {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(string(text)))]
	if !ok {
		return &UnknownNameError{Kind: "log level", Name: string(text)}
	}
	*l = lvl
	return nil
}

func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l LogLevel) charm() log.Level {
	switch l {
	case InfoLevel:
		return log.InfoLevel
	case WarnLevel:
		return log.WarnLevel
	case ErrorLevel:
		return log.ErrorLevel
	case FatalLevel:
		return log.FatalLevel
	default:
		return log.DebugLevel
	}
}

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(func() {
		l := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "Ace 🂡 ",
			CallerOffset:    1,
		})
		l.SetLevel(log.DebugLevel)
		singleton = &logger{l}
	})
	return singleton
}

// SetLogLevel changes the minimum level reported by the engine logger.
func SetLogLevel(level LogLevel) {
	getLogger().SetLevel(level.charm())
}

// SetLogOutput redirects the engine logger, mostly useful in tests.
func SetLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

// LogDebug and the other wrappers take a message followed by key/value pairs.
func LogDebug(msg string, args ...interface{}) {
	getLogger().Debug(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Info(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warn(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Error(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatal(msg, args...)
}
