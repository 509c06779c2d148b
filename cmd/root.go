package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/thermo/internal/build"
)

var rootCmd = &cobra.Command{
	Use:   "thermocheck [--config <path>] [flags]",
	Short: "Self-check the thermo temperature conversions",
	Long: `Run the fixed sequence of temperature conversion checks.

Each of the six ordered scale pairs (Celsius, Fahrenheit, Kelvin) is
exercised by a round-trip conversion that must return to its original
value within tolerance. The process exits 0 when every check passes and
panics at the first violated check.

Configuration, if any, is read from the file given by --config or
$THERMOCHECK_CONFIG_PATH and only controls logging.`,
	Example: `  thermocheck
  thermocheck --log-level debug
  thermocheck --config thermocheck.yaml`,
	Version:           build.Version(),
	RunE:              runCheck,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
