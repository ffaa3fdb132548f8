package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. Production config when APP_ENV=production,
// development config otherwise.
func New() *zap.Logger {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	return l
}
