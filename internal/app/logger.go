package app

import (
	"os"

	"service-cursos/internal/config"
	"service-cursos/internal/logx"
)

// NewLogger builds the process logger from cfg.Log.
func NewLogger(cfg *config.Config) logx.Logger {
	if cfg.Log.Backend == config.LogBackendZerolog {
		return logx.NewZerologJSON(os.Stdout, cfg.Log.Level)
	}
	return logx.NewSlogJSON(os.Stdout, cfg.Log.Level)
}
