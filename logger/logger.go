package logger

import (
	"os"

	"go.uber.org/zap"
)

var log *zap.Logger

// Init builds the process-wide logger. Production JSON encoding by default;
// set LOG_MODE=dev for the human-readable development config.
func Init() error {
	var err error
	if os.Getenv("LOG_MODE") == "dev" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	return err
}

// L returns the global logger, falling back to a no-op logger so tests can
// use packages that log without calling Init.
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
