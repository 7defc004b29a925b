package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func NewLogFile(filename string) (*os.File, error) {
	var file *os.File
	var err error
	if _, err = os.Stat(filename); os.IsNotExist(err) {
		var dir = filepath.Dir(filename)
		if err = os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		file, err = os.Create(filename)
	} else if err == nil {
		file, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	}
	return file, err
}

type FormatterType string

const (
	FormatterPrefixed FormatterType = "prefixed"
	FormatterText     FormatterType = "text"
	FormatterJson     FormatterType = "json"
)

// NewFormatter returns the logrus formatter for the given type, defaulting to the prefixed text formatter.
func NewFormatter(t FormatterType) logrus.Formatter {
	switch FormatterType(strings.ToLower(string(t))) {
	case FormatterText:
		return &logrus.TextFormatter{FullTimestamp: true}
	case FormatterJson:
		return &logrus.JSONFormatter{}
	}
	return &prefixed.TextFormatter{FullTimestamp: true}
}

type logger struct {
	Loglevel Loglevel
	entry    *logrus.Entry
}

// Newlogger returns a logger writing to w with the prefixed text formatter.
func Newlogger(loglevel Loglevel, w io.Writer, prefix ...string) Logger {
	return NewloggerWithFormatter(loglevel, w, NewFormatter(FormatterPrefixed), prefix...)
}

// NewloggerWithFormatter returns a logger writing to w with the given formatter.
func NewloggerWithFormatter(loglevel Loglevel, w io.Writer, formatter logrus.Formatter, prefix ...string) Logger {
	var l = logrus.New()
	l.SetOutput(w)
	l.SetFormatter(formatter)
	l.SetLevel(loglevel.logrus())

	var entry = logrus.NewEntry(l)
	if len(prefix) > 0 && prefix[0] != "" {
		entry = entry.WithField("prefix", prefix[0])
	}

	return &logger{
		Loglevel: loglevel,
		entry:    entry,
	}
}

// Write a critical error, always logged.
func (l *logger) Critical(err error) {
	l.entry.WithField("critical", true).Error(err.Error())
}

// Write an error message, loglevel error
func (l *logger) Error(args ...any) {
	l.log(ERROR, fmt.Sprint(args...))
}

// Write an error message, loglevel error
func (l *logger) Errorf(format string, args ...any) {
	l.log(ERROR, fmt.Sprintf(format, args...))
}

// Write a warning message, loglevel warning
func (l *logger) Warning(args ...any) {
	l.log(WARNING, fmt.Sprint(args...))
}

// Write a warning message, loglevel warning
func (l *logger) Warningf(format string, args ...any) {
	l.log(WARNING, fmt.Sprintf(format, args...))
}

// Write an info message, loglevel info
func (l *logger) Info(args ...any) {
	l.log(INFO, fmt.Sprint(args...))
}

// Write an info message, loglevel info
func (l *logger) Infof(format string, args ...any) {
	l.log(INFO, fmt.Sprintf(format, args...))
}

// Write a debug message, loglevel debug
func (l *logger) Debug(args ...any) {
	l.log(DEBUG, fmt.Sprint(args...))
}

// Write a debug message, loglevel debug
func (l *logger) Debugf(format string, args ...any) {
	l.log(DEBUG, fmt.Sprintf(format, args...))
}

// Write a test message, loglevel test
func (l *logger) Test(args ...any) {
	l.log(TEST, fmt.Sprint(args...))
}

// Write a test message, loglevel test
func (l *logger) Testf(format string, args ...any) {
	l.log(TEST, fmt.Sprintf(format, args...))
}

// logrus terminates every entry itself, trailing newlines are dropped.
func (l *logger) log(level Loglevel, msg string) {
	if l.Loglevel < level {
		return
	}
	l.entry.Log(level.logrus(), strings.TrimRight(msg, "\n"))
}
