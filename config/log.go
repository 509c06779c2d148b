package config

import "github.com/lone-faerie/thermo/log"

// LogConfig contains the configuration for logging. Output is one of
// "stderr", "stdout", or a file path; Format is "text" or "json".
type LogConfig struct {
	Level  log.Level `yaml:"level"`
	Output string    `yaml:"output"`
	Format string    `yaml:"format"`
}

var defaultLog = LogConfig{
	Level:  log.LevelInfo,
	Output: "stderr",
	Format: "text",
}
