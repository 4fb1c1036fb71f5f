// Package logger sets up the zap logger. Output goes to a file because the
// terminal belongs to the UI.
package logger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log      = zap.NewNop()
	onceInit sync.Once
	initErr  error
)

// Init builds the global logger writing to path at the given level ("debug", "info", ...)
func Init(path, level string, meta ...zap.Field) error {
	onceInit.Do(func() {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			initErr = errors.Wrapf(err, "parsing log level %q", level)
			return
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			initErr = errors.Wrap(err, "creating log directory")
			return
		}

		instance, err := configure(lvl, path).Build()
		if err != nil {
			initErr = errors.Wrap(err, "building logger")
			return
		}

		Log = instance.With(meta...)
	})

	return initErr
}

// Sync flushes buffered log entries
func Sync() {
	_ = Log.Sync()
}

func configure(level zapcore.Level, path string) zap.Config {
	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "timestamp"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder.EncodeCaller = zapcore.ShortCallerEncoder
	encoder.EncodeDuration = zapcore.SecondsDurationEncoder
	encoder.CallerKey = "caller"
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     encoder,
		OutputPaths:       []string{path},
		ErrorOutputPaths:  []string{path},
	}
}
