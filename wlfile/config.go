package wlfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Neumenon/wldat/wldat"
)

// Config is the file-level codec configuration, usually loaded from YAML:
//
//	strict: true
//	order: row-major
//	max_rank: 128
//	compression: zstd
//	compression_level: 3
//	comment: exported by solver v2
type Config struct {
	Strict           bool   `yaml:"strict"`
	Order            string `yaml:"order,omitempty"`
	MaxRank          int    `yaml:"max_rank,omitempty"`
	MaxTokenLen      int    `yaml:"max_token_len,omitempty"`
	PlainExponent    bool   `yaml:"plain_exponent"`
	Comment          string `yaml:"comment,omitempty"`
	Compression      string `yaml:"compression,omitempty"`
	CompressionLevel int    `yaml:"compression_level,omitempty"`
}

// DefaultConfig returns lenient row-major settings with automatic
// compression.
func DefaultConfig() Config {
	return Config{
		Order:       wldat.RowMajor.String(),
		MaxRank:     wldat.DefaultMaxRank,
		Compression: CompressionAuto.String(),
	}
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks that every field has a usable value.
func (c Config) Validate() error {
	if _, err := wldat.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParseCompression(c.Compression); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.MaxRank < 0 {
		return fmt.Errorf("config: max_rank must not be negative, got %d", c.MaxRank)
	}
	if c.MaxTokenLen < 0 {
		return fmt.Errorf("config: max_token_len must not be negative, got %d", c.MaxTokenLen)
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseOptions converts the config to decoder options.
func (c Config) ParseOptions() (wldat.ParseOptions, error) {
	order, err := wldat.ParseOrder(c.Order)
	if err != nil {
		return wldat.ParseOptions{}, err
	}
	return wldat.ParseOptions{
		Strict:      c.Strict,
		Order:       order,
		MaxRank:     c.MaxRank,
		MaxTokenLen: c.MaxTokenLen,
	}, nil
}

// EmitOptions converts the config to encoder options.
func (c Config) EmitOptions() (wldat.EmitOptions, error) {
	order, err := wldat.ParseOrder(c.Order)
	if err != nil {
		return wldat.EmitOptions{}, err
	}
	return wldat.EmitOptions{
		Order:         order,
		PlainExponent: c.PlainExponent,
		MaxRank:       c.MaxRank,
	}, nil
}
