package logger

import (
	"sync"
)

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns a singleton logger configured with the provided level string
// ("debug", "info", "warn", "error"). The first call initializes the logger;
// subsequent calls ignore the level and return the existing instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}
