package utils

import (
	"log"
	"os"
)

// LoggerConfig configures the application logger.
type LoggerConfig struct {
	Output *os.File
}

// InitLogger builds the application logger. All persistence advisories and
// request logs go through it.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	return log.New(cfg.Output, "[GlowUp] ", log.LstdFlags|log.LUTC)
}
