package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/mallmock/cmd/mallmockctl/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string

	// Overrides for Config fields
	allocatorFlag  string
	encodingFlag   string
	bufferSizeFlag int
	logLevelFlag   string

	// cfg is the effective configuration after flags are applied.
	cfg = DefaultConfig()

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "mallmockctl",
	Short: "Drive code through a deterministic allocation fault injector",
	Long: `mallmockctl reads files through the readfile sample consumer with an
allocator that can be armed to fail exactly one allocation. It can fail a
chosen ordinal, or sweep every ordinal and report any failure that was
ignored or leaked memory.`,
	Version:            "0.1.0",
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")

	rootCmd.PersistentFlags().StringVar(&allocatorFlag, "allocator", "heap", "Real allocator: heap or mmap")
	rootCmd.PersistentFlags().StringVar(&encodingFlag, "encoding", "", "IANA charset to decode lines from (e.g. windows-1252)")
	rootCmd.PersistentFlags().IntVar(&bufferSizeFlag, "buffer-size", 0, "Read buffer size in bytes")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
}

// setup loads the configuration, applies explicitly set flags and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("allocator") {
		loaded.Allocator = allocatorFlag
	}
	if flags.Changed("encoding") {
		loaded.Encoding = encodingFlag
	}
	if flags.Changed("buffer-size") {
		loaded.BufferSize = bufferSizeFlag
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevelFlag
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	level, enabled, err := cfg.LogLevelValue()
	if err != nil {
		return err
	}
	closeFn, err := logger.Init(logger.Options{Enabled: enabled, Path: cfg.LogFile, Level: level})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	closeLog = closeFn
	logger.Debug("configuration loaded", "allocator", cfg.Allocator, "encoding", cfg.Encoding)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return closeLog()
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
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
