// Package config loads analyzer settings from an INI-style file:
//
//	[analyze]
//	SampleStride = 1000
//	Format = text
package config

import (
	"fmt"
	"os"

	"gopkg.in/gcfg.v1"

	"github.com/philipparndt/goply/pkg/analysis"
)

// Config is the analyzer configuration file layout
type Config struct {
	Analyze struct {
		SampleStride int
		Format       string
	}
}

// Default returns the configuration used when no file is given
func Default() *Config {
	c := &Config{}
	c.Analyze.SampleStride = analysis.DefaultSampleStride
	c.Analyze.Format = analysis.FormatText
	return c
}

// Load reads path on top of the defaults. The result is not validated, so
// callers can layer further overrides before calling Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse reads configuration text on top of the defaults
func Parse(text string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(c, text); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return c, nil
}

// Validate checks every setting
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	switch c.Analyze.Format {
	case analysis.FormatText, analysis.FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q", c.Analyze.Format)
	}
}

// Options returns the analysis options described by the configuration
func (c *Config) Options() analysis.Options {
	return analysis.Options{SampleStride: c.Analyze.SampleStride}
}
