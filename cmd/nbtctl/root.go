package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string
	byteOrder  string

	cfg = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "nbtctl",
	Short: "Inspect and edit Minecraft NBT files",
	Long: `nbtctl reads, prints, edits, converts and compares files in the
Named Binary Tag format used by Minecraft (level.dat, player data,
structure files). Gzip, zlib and raw files are detected automatically;
Bedrock little-endian data is selected with --byte-order little.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if !cmd.Flags().Changed("byte-order") && cfg.ByteOrder != "" {
			byteOrder = cfg.ByteOrder
		}
		setupLogging()
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $NBTCTL_CONFIG or ~/.config/nbtctl/config.toml)")
	rootCmd.PersistentFlags().StringVar(&byteOrder, "byte-order", "big", "Byte order of the input (big for Java, little for Bedrock)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setupLogging routes library debug records through a charm logger on
// stderr.
func setupLogging() {
	level := log.WarnLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "nbtctl",
	})
	nbt.SetLogger(slog.New(l))
}

// useColor reports whether text output should carry ANSI colour.
func useColor() bool {
	if noColor || jsonOut {
		return false
	}
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// codecOptions builds decode options from the global flags and config.
func codecOptions() (types.CodecOptions, error) {
	var opts types.CodecOptions
	switch byteOrder {
	case "big", "java", "":
		opts.ByteOrder = types.BigEndian
	case "little", "bedrock":
		opts.ByteOrder = types.LittleEndian
	default:
		return opts, fmt.Errorf("unknown byte order %q (must be big or little)", byteOrder)
	}
	limits, err := limitsPreset(cfg.Limits)
	if err != nil {
		return opts, err
	}
	opts.Limits = limits
	return opts, nil
}

func limitsPreset(name string) (types.Limits, error) {
	switch name {
	case "default", "":
		return types.DefaultLimits(), nil
	case "strict":
		return types.StrictLimits(), nil
	case "relaxed":
		return types.RelaxedLimits(), nil
	}
	return types.Limits{}, fmt.Errorf("unknown limits preset: %s (must be default, strict, or relaxed)", name)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
