// Package log is the process-wide logger used by every slimy command.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	cblog "github.com/charmbracelet/log"
)

var (
	logger *cblog.Logger
	once   sync.Once
)

func get() *cblog.Logger {
	once.Do(func() {
		logger = newLogger(os.Stderr)
	})
	return logger
}

func newLogger(w io.Writer) *cblog.Logger {
	l := cblog.NewWithOptions(w, cblog.Options{
		Prefix: "slimy",
		Level:  cblog.InfoLevel,
	})

	styles := cblog.DefaultStyles()
	styles.Levels[cblog.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("#e5c07b"))
	styles.Levels[cblog.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("#e06c75"))
	l.SetStyles(styles)

	return l
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	get().SetOutput(w)
}

// SetLevel accepts debug, info, warn, error or fatal.
func SetLevel(level string) error {
	lvl, err := cblog.ParseLevel(level)
	if err != nil {
		return err
	}
	get().SetLevel(lvl)
	return nil
}

func Debug(msg interface{}, keyvals ...interface{}) { get().Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { get().Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { get().Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { get().Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { get().Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { get().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { get().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { get().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { get().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { get().Fatalf(format, args...) }
