package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/philipparndt/goconstruct/internal/config"
	"github.com/philipparndt/goconstruct/internal/engine"
	"github.com/philipparndt/goconstruct/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	overrides []string
)

var rootCmd = &cobra.Command{
	Use:   "goconstruct",
	Short: "A 2D geometric construction engine driven by scripts",
	Long: `goconstruct replays construction scripts (clicks, tool switches, selection
commands) against the interactive construction engine and reports the
resulting drawing: elements, intersections, snapping and measurements.

Examples:
  goconstruct run drawing.gcs                      # Print the final canvas
  goconstruct run drawing.gcs --json               # Print the snapshot as JSON
  goconstruct watch drawing.gcs                    # Re-run on every save
  goconstruct snap drawing.gcs --at 49,51          # Where would a click land?
  goconstruct intersect --line 0,0,10,10 --circle 5,5,3`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringArrayVar(&overrides, "set", nil,
		"override a setting as name=value (repeatable), e.g. --set grid=20")
}

// newLogger writes to stderr, at debug level when --verbose is set.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// settingsFromFlags applies every --set override to the defaults.
func settingsFromFlags() (config.Settings, error) {
	s := config.Default()
	for _, o := range overrides {
		name, value, ok := strings.Cut(o, "=")
		if !ok {
			return s, fmt.Errorf("--set %q: expected name=value", o)
		}
		p, err := config.ParsePatch(strings.TrimSpace(name), strings.TrimSpace(value))
		if err != nil {
			return s, err
		}
		if s, err = s.Apply(p); err != nil {
			return s, err
		}
	}
	return s, nil
}

func engineOptions() ([]engine.Option, error) {
	s, err := settingsFromFlags()
	if err != nil {
		return nil, err
	}
	return []engine.Option{engine.WithSettings(s)}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
