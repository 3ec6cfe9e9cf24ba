// Package config reads the lzss command configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hchen90/lzss"
)

// EncodeConfig lists the encoder settings.
type EncodeConfig struct {
	SearchLimit int  `yaml:"searchLimit"`
	Legacy      bool `yaml:"legacy"`
}

// DecodeConfig lists the decoder settings.
type DecodeConfig struct {
	MaxSize int  `yaml:"maxSize"`
	Lenient bool `yaml:"lenient"`
}

// Config lists the config fields.
type Config struct {
	LogLevel string       `yaml:"logLevel"`
	Encode   EncodeConfig `yaml:"encode"`
	Decode   DecodeConfig `yaml:"decode"`
	Compare  []string     `yaml:"compare"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Encode: EncodeConfig{
			SearchLimit: lzss.MaxOffset,
		},
	}
}

// Read reads the config from path. Fields missing from the file keep their defaults.
func Read(path string) (cfg Config, err error) {
	cfg = Default()

	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	// An empty file leaves the defaults in place.
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("config %s: %w", path, err)
		return
	}

	err = cfg.validate()
	return
}

func (c Config) validate() error {
	if c.Encode.SearchLimit < 0 || c.Encode.SearchLimit > lzss.MaxOffset {
		return fmt.Errorf("encode.searchLimit must be within 0..%d, got %d", lzss.MaxOffset, c.Encode.SearchLimit)
	}
	if c.Decode.MaxSize < 0 {
		return fmt.Errorf("decode.maxSize must be non-negative, got %d", c.Decode.MaxSize)
	}

	return nil
}

// EncodeOptions converts the encoder settings.
func (c Config) EncodeOptions() *lzss.EncodeOptions {
	return &lzss.EncodeOptions{
		SearchLimit: c.Encode.SearchLimit,
		Legacy:      c.Encode.Legacy,
	}
}

// DecodeOptions converts the decoder settings.
func (c Config) DecodeOptions() *lzss.DecodeOptions {
	return &lzss.DecodeOptions{
		MaxSize: c.Decode.MaxSize,
		Lenient: c.Decode.Lenient,
	}
}
