package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a json logger writing to stderr so that command output on
// stdout stays clean. Empty or unknown levels fall back to warn.
func New(level string) (*zap.Logger, error) {
	return build(level, []string{"stderr"})
}

func build(level string, outputs []string) (*zap.Logger, error) {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.WarnLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	// ParseAtomicLevel reads "" as info
	if strings.TrimSpace(level) != "" {
		atomicLogLevel, err := zap.ParseAtomicLevel(level)
		if err == nil {
			loggerCfg.Level = atomicLogLevel
		}
	}

	return loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
}
