package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	z *zap.Logger
}

var (
	mu     sync.RWMutex
	global = &Logger{z: zap.NewNop()}
)

// Init replaces the process-wide logger. Call once during app startup,
// before any component starts logging.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl)

	mu.Lock()
	global = &Logger{z: zap.New(core)}
	mu.Unlock()

	return nil
}

func L() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func With(fields ...Field) *Logger { return L().With(fields...) }

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...Field) {
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(_ context.Context, msg string, fields ...Field) {
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(_ context.Context, msg string, fields ...Field) {
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(_ context.Context, msg string, fields ...Field) {
	l.z.Error(msg, fields...)
}

// Sync flushes buffered log entries, if any.
func (l *Logger) Sync() error { return l.z.Sync() }
