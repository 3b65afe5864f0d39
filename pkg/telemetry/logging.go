// Package telemetry provides the simulator's optional logging and
// metrics instrumentation. Both are injected, nil-safe, and touched only
// at simulation boundaries (setup, per-batch dispatch, completion) —
// never inside the per-path hot loop, which must stay allocation-free.
package telemetry

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the optional rotating file sink. An empty
// FilePath logs to stdout only.
type LogConfig struct {
	Level      string `mapstructure:"level" default:"info"`
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" default:"100"`
	MaxBackups int    `mapstructure:"max_backups" default:"5"`
	MaxAgeDays int    `mapstructure:"max_age_days" default:"30"`
}

// NewLogger builds a zap.Logger per cfg. Passing the zero LogConfig
// yields an info-level logger writing JSON to stdout.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	var writer zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)
	if cfg.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		writer = zapcore.NewMultiWriteSyncer(writer, zapcore.AddSync(rotator))
	}

	core := zapcore.NewCore(encoder, writer, level)
	return zap.New(core), nil
}

// NoopLogger returns a logger that discards everything, for callers that
// don't want the simulator to log at all.
func NoopLogger() *zap.Logger { return zap.NewNop() }
