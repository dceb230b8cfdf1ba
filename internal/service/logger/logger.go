package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	AccessLogger *zap.Logger
	DBLogger     *zap.Logger
)

func logPath(env, fallback string) string {
	if p := os.Getenv(env); p != "" {
		return p
	}
	return fallback
}

func buildLogger(outputPath string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{outputPath}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

func InitLoggers() error {
	var err error
	AccessLogger, err = buildLogger(logPath("ACCESS_LOG", "access.log"))
	if err != nil {
		return err
	}
	DBLogger, err = buildLogger(logPath("DB_LOG", "db.log"))
	if err != nil {
		return err
	}
	return nil
}

func SyncLoggers() error {
	if err := AccessLogger.Sync(); err != nil {
		return err
	}
	return DBLogger.Sync()
}
