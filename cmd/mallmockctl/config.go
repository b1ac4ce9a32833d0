package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/mallmock/alloc"
	"github.com/joshuapare/mallmock/mallmock"
	"github.com/joshuapare/mallmock/readfile"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file. Command-line flags
// override any field they set explicitly.
//
//	allocator: mmap
//	encoding: windows-1252
//	buffer_size: 4096
//	max_ordinal: 10000
//	log_level: debug
//	log_file: /tmp/mallmockctl.log
type Config struct {
	// Allocator selects the real allocator behind the interceptor: "heap" or "mmap".
	Allocator string `yaml:"allocator"`

	// Encoding is an IANA character set name used to decode lines. Empty means raw bytes.
	Encoding string `yaml:"encoding"`

	// BufferSize is the read buffer size. Zero means readfile.DefaultBufferSize.
	BufferSize int `yaml:"buffer_size"`

	// MaxOrdinal bounds sweeps. Zero means mallmock.DefaultMaxOrdinal.
	MaxOrdinal int `yaml:"max_ordinal"`

	// LogLevel is one of debug, info, warn, error. Empty disables logging.
	LogLevel string `yaml:"log_level"`

	// LogFile receives JSON log records. Empty logs text to stderr.
	LogFile string `yaml:"log_file"`
}

var errBadConfig = errors.New("invalid configuration")

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Allocator: "heap"}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the defaults.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that can be checked without side effects.
func (c Config) Validate() error {
	if _, err := c.NewAllocator(); err != nil {
		return err
	}
	if _, err := c.TextEncoding(); err != nil {
		return err
	}
	if _, _, err := c.LogLevelValue(); err != nil {
		return err
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: buffer_size %d is negative", errBadConfig, c.BufferSize)
	}
	if c.MaxOrdinal < 0 {
		return fmt.Errorf("%w: max_ordinal %d is negative", errBadConfig, c.MaxOrdinal)
	}
	return nil
}

// NewAllocator returns the real allocator named by c.Allocator.
func (c Config) NewAllocator() (alloc.Allocator, error) {
	switch c.Allocator {
	case "", "heap":
		return alloc.Heap{}, nil
	case "mmap":
		return alloc.Mmap{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown allocator %q (want heap or mmap)", errBadConfig, c.Allocator)
	}
}

// TextEncoding resolves c.Encoding. An empty name returns nil.
func (c Config) TextEncoding() (encoding.Encoding, error) {
	if c.Encoding == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(c.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %q: %w", errBadConfig, c.Encoding, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: encoding %q is not supported", errBadConfig, c.Encoding)
	}
	return enc, nil
}

// LogLevelValue parses c.LogLevel. The boolean is false when logging is off.
func (c Config) LogLevelValue() (slog.Level, bool, error) {
	if c.LogLevel == "" {
		return 0, false, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, false, fmt.Errorf("%w: log_level: %w", errBadConfig, err)
	}
	return lvl, true, nil
}

// ReadOptions builds readfile options from c.
func (c Config) ReadOptions() (*readfile.Options, error) {
	enc, err := c.TextEncoding()
	if err != nil {
		return nil, err
	}
	return &readfile.Options{BufferSize: c.BufferSize, Encoding: enc}, nil
}

// SweepOptions builds sweep options from c.
func (c Config) SweepOptions(logger *slog.Logger) *mallmock.SweepOptions {
	return &mallmock.SweepOptions{MaxOrdinal: c.MaxOrdinal, Logger: logger}
}
