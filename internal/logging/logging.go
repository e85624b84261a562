package logging

import (
	"fmt"
	"log"
)

// Log level constants
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var currentLogLevel = LevelInfo

// SetLevel sets the global logging level
func SetLevel(level string) {
	currentLogLevel = level
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if shouldLog(LevelDebug) {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if shouldLog(LevelInfo) {
		fmt.Printf(format+"\n", args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if shouldLog(LevelWarn) {
		log.Printf("[WARN] "+format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if shouldLog(LevelError) {
		log.Printf("[ERROR] "+format, args...)
	}
}

func shouldLog(level string) bool {
	current, ok := levelRank[currentLogLevel]
	if !ok {
		current = levelRank[LevelInfo]
	}
	return levelRank[level] >= current
}
