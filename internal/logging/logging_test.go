package logging

import (
	"testing"
)

func TestSetLevel(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "invalid"}
	for _, lvl := range levels {
		SetLevel(lvl)
	}
	SetLevel(LevelInfo)
}

func TestShouldLog(t *testing.T) {
	SetLevel(LevelWarn)
	defer SetLevel(LevelInfo)

	if shouldLog(LevelDebug) || shouldLog(LevelInfo) {
		t.Errorf("debug/info should be suppressed at warn level")
	}
	if !shouldLog(LevelWarn) || !shouldLog(LevelError) {
		t.Errorf("warn/error should pass at warn level")
	}
}
