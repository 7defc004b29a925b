package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Loglevel decides which messages are written, a higher level is more verbose.
type Loglevel int8

const (
	CRITICAL Loglevel = iota
	ERROR
	WARNING
	INFO
	DEBUG
	TEST
)

var levelMap = map[Loglevel]string{
	CRITICAL: "CRITICAL",
	ERROR:    "ERROR",
	WARNING:  "WARNING",
	INFO:     "INFO",
	DEBUG:    "DEBUG",
	TEST:     "TEST",
}

func (l Loglevel) String() string {
	if s, ok := levelMap[l]; ok {
		return s
	}
	return "UNKNOWN"
}

// LoglevelFromString parses a level name, unknown names fall back to INFO.
func LoglevelFromString(s string) Loglevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return CRITICAL
	case "ERROR":
		return ERROR
	case "WARNING", "WARN":
		return WARNING
	case "DEBUG":
		return DEBUG
	case "TEST":
		return TEST
	}
	return INFO
}

func (l Loglevel) logrus() logrus.Level {
	switch l {
	case CRITICAL, ERROR:
		return logrus.ErrorLevel
	case WARNING:
		return logrus.WarnLevel
	case INFO:
		return logrus.InfoLevel
	case DEBUG:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}
