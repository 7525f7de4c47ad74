package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOptions selects the level, encoding and service field of the process logger
type LoggerOptions struct {
	Level   string
	Format  string
	Service string
}

// NewLogger builds the process logger. Unknown levels fall back to info;
// any format other than "console" produces JSON on stdout.
func NewLogger(opts LoggerOptions) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var config zap.Config
	if opts.Format == "console" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.OutputPaths = []string{"stdout"}
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if opts.Service != "" {
		config.InitialFields = map[string]interface{}{"service": opts.Service}
	}

	return config.Build()
}
