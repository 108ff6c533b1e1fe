package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/amake/pkg/errors"
)

// Output formats
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the effective amake configuration
type Config struct {
	Files    Files    `koanf:"files" toml:"files"`
	Make     Make     `koanf:"make" toml:"make"`
	Pipeline Pipeline `koanf:"pipeline" toml:"pipeline"`
	Output   Output   `koanf:"output" toml:"output"`
}

// Files names the project documents
type Files struct {
	Schema      []string `koanf:"schema" toml:"schema"`
	Config      []string `koanf:"config" toml:"config"`
	BuildScript string   `koanf:"build_script" toml:"build_script"`
}

// Make configures the generated command
type Make struct {
	DefaultBin string `koanf:"default_bin" toml:"default_bin"`
}

// Pipeline configures pipeline evaluation
type Pipeline struct {
	StrictLiterals bool `koanf:"strict_literals" toml:"strict_literals"`
	Workers        int  `koanf:"workers" toml:"workers"`
}

// Output configures how results are printed
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Validate checks values that the decoder cannot
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrConfigParse, "invalid output format '%s'", c.Output.Format).
			WithDetail("key", "output.format")
	}
	if c.Pipeline.Workers < 0 {
		return errors.Newf(errors.ErrConfigParse, "pipeline.workers must not be negative, got %d", c.Pipeline.Workers).
			WithDetail("key", "pipeline.workers")
	}
	if len(c.Files.Schema) == 0 || len(c.Files.Config) == 0 {
		return errors.New(errors.ErrConfigParse, "files.schema and files.config need at least one name")
	}
	return nil
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
