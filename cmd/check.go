package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/thermo"
	"github.com/lone-faerie/thermo/config"
	"github.com/lone-faerie/thermo/internal/build"
	"github.com/lone-faerie/thermo/log"
)

// Flags for [rootCmd]
var (
	ConfigPath string                         // Path to config file (default is $THERMOCHECK_CONFIG_PATH)
	LogLevel   = log.LevelFlag(log.LevelInfo) // Log level, overrides the config
)

func init() {
	rootCmd.Flags().StringVarP(&ConfigPath, "config", "c", "", "path to config file")
	rootCmd.Flags().Var(&LogLevel, "log-level", "log level")
}

func findConfig() {
	if ConfigPath != "" {
		return
	}
	if env, ok := os.LookupEnv("THERMOCHECK_CONFIG_PATH"); ok {
		ConfigPath = env
	}
}

func setLogHandler(cfg *config.Config) error {
	var w io.Writer

	switch cfg.Log.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w = f
	}

	switch cfg.Log.Format {
	case "json":
		log.SetJSONHandler(w)
	default:
		log.SetTextHandler(w)
	}

	log.SetLogLevel(cfg.Log.Level)
	return nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	findConfig()

	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = log.Level(LogLevel)
	}
	if err = setLogHandler(cfg); err != nil {
		return err
	}

	log.Info("Running conversion checks", "version", build.Version())
	log.Debug("Seed quantities",
		"celsius", thermo.C(36.5),
		"fahrenheit", thermo.F(79.0),
		"kelvin", thermo.K(100.0),
	)

	// Verify panics at the first violated check. A violated check means
	// the conversion table itself is broken, so there is nothing to
	// recover to.
	thermo.Verify()

	log.Info("All conversion checks passed")
	return nil
}
