package cli

import (
	"time"

	"min_triangle_path/internal/config"
)

type Options struct {
	EndMarker string
	Separator string
	Input     string
	Format    string
	Timeout   time.Duration
	Verbosity string
	LogFile   string
}

func optionsFromConfig(cfg config.Config) Options {
	return Options{
		EndMarker: cfg.EndMarker,
		Separator: cfg.Separator,
		Input:     cfg.Input,
		Format:    cfg.Format,
		Timeout:   cfg.Timeout,
		Verbosity: cfg.Verbosity,
		LogFile:   cfg.LogFile,
	}
}
