package config

import (
	"fmt"
	"time"

	coreconfig "github.com/go-core-fx/config"
)

type Config struct {
	EndMarker string        `koanf:"end_marker"`
	Separator string        `koanf:"separator"`
	Input     string        `koanf:"input"`
	Format    string        `koanf:"format"`
	Timeout   time.Duration `koanf:"timeout"`
	Verbosity string        `koanf:"verbosity"`
	LogFile   string        `koanf:"log_file"`
}

func Default() Config {
	return Config{
		EndMarker: "EOF",
		Separator: " ",
		Input:     "-",
		Format:    "text",
		Timeout:   20 * time.Second,
		Verbosity: "off",
	}
}

func New() (Config, error) {
	cfg := Default()

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}
