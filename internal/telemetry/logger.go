// Package telemetry provides the process-wide structured logger and a
// bounded ring buffer of recent generation traces, used to observe the
// sandbox pipeline without persisting anything.
package telemetry

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once
var singleton *log.Logger

func getLogger() *log.Logger {
	once.Do(func() {
		l := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "scenecraft ",
		})
		l.SetLevel(log.InfoLevel)
		singleton = l
	})
	return singleton
}

// Debug logs at debug level with structured key/value pairs.
func Debug(msg string, kv ...interface{}) { getLogger().Debug(msg, kv...) }

// Info logs at info level with structured key/value pairs.
func Info(msg string, kv ...interface{}) { getLogger().Info(msg, kv...) }

// Warn logs at warn level with structured key/value pairs.
func Warn(msg string, kv ...interface{}) { getLogger().Warn(msg, kv...) }

// Error logs at error level with structured key/value pairs.
func Error(msg string, kv ...interface{}) { getLogger().Error(msg, kv...) }
