// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/logger"
)

// InitializeLogger initializes the JSON logger. An empty level means info.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
