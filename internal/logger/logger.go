package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until Init is called.
var Log = zap.NewNop()

var mu sync.Mutex

// Init installs a production logger at info level.
func Init() {
	InitWithLevel(zapcore.InfoLevel)
}

// InitWithLevel installs a production logger writing to stderr at the given level.
func InitWithLevel(level zapcore.Level) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = level > zapcore.DebugLevel

	l, err := cfg.Build()
	if err != nil {
		// Keep whatever logger was there before
		Log.Error("Failed to build logger", zap.Error(err))
		return
	}
	SetLogger(l)
}

// SetLogger replaces the process-wide logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	Log = l
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
