package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config is playc's optional project file, loaded once per invocation.
// Absence of the file is not an error: the built-in defaults (color on,
// log_level "info") apply, and keys missing from the file keep them too.
type config struct {
	Color    bool   `toml:"color"`
	LogLevel string `toml:"log_level"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Color: true, LogLevel: "info"}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
