package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Log == nil {
		t.Fatal("Log should never be nil")
	}
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("default logger should discard all levels")
	}
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Log.Info("hello", zap.Int("n", 3))

	if logs.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", logs.Len())
	}
	if logs.All()[0].Message != "hello" {
		t.Errorf("Unexpected message %q", logs.All()[0].Message)
	}
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	SetLogger(nil)
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nil should restore the no-op logger")
	}
}
