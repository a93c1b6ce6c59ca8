// Package config loads application settings from defaults, an optional YAML
// file and PLOTSUMMARY_* environment variables, in that order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "PLOTSUMMARY_"

// DefaultPath is the config file read when no other path is given.
const DefaultPath = "plotsummary.yaml"

type Application struct {
	Log    Log    `koanf:"log"`
	Export Export `koanf:"export"`
	Seed   Seed   `koanf:"seed"`
}

type Log struct {
	Level string `koanf:"level"`
}

type Export struct {
	Locale string `koanf:"locale"`
	OutDir string `koanf:"outdir"`
}

type Seed struct {
	Enabled bool `koanf:"enabled"`
}

func defaults() Application {
	return Application{
		Log:    Log{Level: "info"},
		Export: Export{Locale: "en-GB", OutDir: "."},
		Seed:   Seed{Enabled: true},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// LogLevel parses the configured level, falling back to info.
func (a Application) LogLevel() log.Level {
	level, err := log.ParseLevel(a.Log.Level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", a.Log.Level)
		return log.InfoLevel
	}
	return level
}
