package logger_test

import (
	"testing"

	"github.com/ornoone/lightning-entitystore/logger"
)

func TestSetLogLevelRoundTrips(t *testing.T) {
	t.Cleanup(func() { _ = logger.SetLogLevel("INFO") })

	for _, level := range []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"} {
		if err := logger.SetLogLevel(level); err != nil {
			t.Fatalf("SetLogLevel(%q) error: %v", level, err)
		}
		if got := logger.GetLogLevel(); got != level {
			t.Errorf("GetLogLevel() = %q, want %q", got, level)
		}
	}
}

func TestSetLogLevelRejectsUnknown(t *testing.T) {
	if err := logger.SetLogLevel("LOUD"); err == nil {
		t.Fatal("SetLogLevel(\"LOUD\") should error")
	}
}
