package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"minigrep/internal/config"
)

// ProvideLogger never writes to stdout: it holds the search results.
func ProvideLogger(cfg *config.Settings) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var logger *zap.Logger
	switch cfg.Env {
	case "prod":
		logFile := filepath.Join(cfg.LogDir, "app.log")

		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return nil, err
		}

		file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(file),
			level,
		)
		logger = zap.New(core)

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		zapCfg.OutputPaths = []string{"stderr"}
		zapCfg.ErrorOutputPaths = []string{"stderr"}
		logger, err = zapCfg.Build()
		if err != nil {
			return nil, err
		}
	}

	return logger.With(zap.String("run_id", uuid.NewString())), nil
}
