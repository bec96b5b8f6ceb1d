// Package logger provides the package-level, level-filtered logger used
// by the store's command-line tooling: caller-annotated, backed by the
// standard library's log.Logger, with atomic level checks so a disabled
// Trace/Debug call costs one atomic load.
//
// The core packages (models, filter) never call this logger themselves.
// Recoverable errors are returned, not logged, so the core stays silent
// and lets the caller (here, cmd/lightningctl) decide what to log and
// what to suppress.
package logger

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// LogLevel is the severity of a log message; higher values are more severe.
type LogLevel int32

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

var levelNames = map[LogLevel]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var (
	currentLevel atomic.Int32
	processID    = os.Getpid()
	out          *log.Logger
)

func init() {
	out = log.New(os.Stdout, "", 0)
	currentLevel.Store(int32(INFO))
}

// SetLogLevel sets the minimum level that will be emitted.
func SetLogLevel(level string) error {
	switch strings.ToUpper(level) {
	case "TRACE":
		currentLevel.Store(int32(TRACE))
	case "DEBUG":
		currentLevel.Store(int32(DEBUG))
	case "INFO":
		currentLevel.Store(int32(INFO))
	case "WARN":
		currentLevel.Store(int32(WARN))
	case "ERROR":
		currentLevel.Store(int32(ERROR))
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}

// GetLogLevel returns the current minimum level as a string.
func GetLogLevel() string {
	return levelNames[LogLevel(currentLevel.Load())]
}

func formatMessage(level LogLevel, skip int, format string, args ...interface{}) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "unknown", 0
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}
	timestamp := time.Now().Format("2006-01-02T15:04:05.000000")
	return fmt.Sprintf("%s [%d] [%s] %s:%d: %s",
		timestamp, processID, levelNames[level], file, line, fmt.Sprintf(format, args...))
}

func logMessage(level LogLevel, skip int, format string, args ...interface{}) {
	if level < LogLevel(currentLevel.Load()) {
		return
	}
	out.Println(formatMessage(level, skip, format, args...))
}

func Trace(format string, args ...interface{}) { logMessage(TRACE, 3, format, args...) }
func Debug(format string, args ...interface{}) { logMessage(DEBUG, 3, format, args...) }
func Info(format string, args ...interface{})  { logMessage(INFO, 3, format, args...) }
func Warn(format string, args ...interface{})  { logMessage(WARN, 3, format, args...) }
func Error(format string, args ...interface{}) { logMessage(ERROR, 3, format, args...) }

// Fatal logs at ERROR and exits the process.
func Fatal(format string, args ...interface{}) {
	out.Println(formatMessage(ERROR, 2, format, args...))
	os.Exit(1)
}
