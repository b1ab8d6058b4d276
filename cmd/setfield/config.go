package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const defaultLogLevel = logging.INFO

type fileConfig struct {
	LogLevel string   `toml:"log_level"`
	Actions  []string `toml:"actions"`
}

type config struct {
	LogLevel logging.Level
	// Actions are set_field actions in value->field form.
	Actions []string
}

func defaultConfig() config {
	return config{LogLevel: defaultLogLevel}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, errors.Wrap(err, "load config")
	}

	if meta.IsDefined("log_level") {
		level, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(raw.LogLevel)))
		if err != nil {
			return config{}, errors.Wrap(err, "parse log_level")
		}
		cfg.LogLevel = level
	}

	if meta.IsDefined("actions") {
		for _, a := range raw.Actions {
			if a = strings.TrimSpace(a); a != "" {
				cfg.Actions = append(cfg.Actions, a)
			}
		}
	}

	return cfg, nil
}
