// Package logger provides named, colored, leveled loggers.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ByerDev/mazegeneratorsolver/config"
)

// Logger writes lines of the form "[NAME] [LEVEL] message".
type Logger struct {
	name  string
	color string
	l     *log.Logger
}

// New creates a logger that prefixes every line with name in the given color.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}
	return &Logger{
		name:  name,
		color: color,
		l:     log.New(w, "", log.LstdFlags),
	}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	lg, _ := New("DISCARD", "", io.Discard)
	return lg
}

// Info logs an informational message.
func (lg *Logger) Info(msg string) {
	lg.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (lg *Logger) Warning(msg string) {
	lg.print(config.LogWarnColor, "WARN", msg)
}

// Error logs a failure.
func (lg *Logger) Error(msg string) {
	lg.print(config.LogErrorColor, "ERROR", msg)
}

// Infof formats and logs an informational message.
func (lg *Logger) Infof(format string, args ...any) {
	lg.Info(fmt.Sprintf(format, args...))
}

// Errorf formats and logs a failure.
func (lg *Logger) Errorf(format string, args ...any) {
	lg.Error(fmt.Sprintf(format, args...))
}

func (lg *Logger) print(levelColor, level, msg string) {
	if lg.color == "" {
		lg.l.Printf("[%s] [%s] %s", lg.name, level, msg)
		return
	}
	lg.l.Printf("%s[%s]%s %s[%s]%s %s", lg.color, lg.name, config.LogColorReset, levelColor, level, config.LogColorReset, msg)
}
