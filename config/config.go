// Package config provides the structures used to configure the thermocheck
// binary. The conversion library itself takes no configuration; everything
// here concerns how a check run is reported.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains the configuration for a check run. Config should be
// created with a call to [Default], [Read], or [Load].
type Config struct {
	Log LogConfig `yaml:"log,omitempty"`
}

var defaultCfg = Config{
	Log: defaultLog,
}

// Default returns the default Config used when no config file is provided.
func Default() *Config {
	cfg := defaultCfg
	return &cfg
}

// Read returns the Config parsed from the yaml encoded config from r.
// Fields absent from the document keep their default values.
func Read(r io.Reader) (cfg *Config, err error) {
	cfg = Default()
	err = yaml.NewDecoder(r).Decode(cfg)
	return
}

// Load returns the Config parsed from the given yaml file. If path is empty
// or the file does not exist, the default config is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
