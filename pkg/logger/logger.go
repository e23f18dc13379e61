package logger

import (
	"fmt"

	"github.com/GlebRadaev/invoicedash/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	name       = "invoicedash"
	timeLayout = "15:04:05 02-01-2006"
)

// InitLogger installs the global zap logger at the level named by LOG_LVL.
// Level names are case-insensitive.
func InitLogger(conf *config.Config) error {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil {
		return fmt.Errorf("unsupported log lvl %q: %w", conf.LogLvl, err)
	}

	c := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger: %w", err)
	}

	zap.ReplaceGlobals(logger.Named(name))

	return nil
}
