package coder

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	abierrors "github.com/wippyai/abi-codec/errors"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	loggerMu   sync.RWMutex
)

// Logger returns the package logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		loggerMu.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		loggerMu.Unlock()
	})
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the package logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerOnce.Do(func() {})
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// logRejected records a failed top-level decode.
func logRejected(op string, input int, err error) {
	l := Logger()
	if !l.Core().Enabled(zapcore.DebugLevel) {
		return
	}
	fields := []zap.Field{
		zap.String("op", op),
		zap.Int("input_len", input),
		zap.Error(err),
	}
	if e, ok := err.(*abierrors.Error); ok {
		fields = append(fields, zap.String("kind", string(e.Kind)))
		if len(e.Path) > 0 {
			fields = append(fields, zap.Strings("path", e.Path))
		}
	}
	l.Debug("decode rejected", fields...)
}
