// Package commands implements amake's operations on a project directory.
// Each command takes an options struct and returns a result that the ui
// package can render in any output format.
package commands

import (
	"path/filepath"

	"github.com/arthur-debert/amake/pkg/builtins"
	"github.com/arthur-debert/amake/pkg/command"
	"github.com/arthur-debert/amake/pkg/config"
	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/filesystem"
	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/schema"
)

// Project locates the documents of one amake project
type Project struct {
	// FS defaults to the operating system
	FS filesystem.FS
	// Dir is the project directory; relative file names resolve against it
	Dir string
	// SchemaFile and ConfigFile override the configured candidate names
	SchemaFile string
	ConfigFile string
	// Settings defaults to config.Default()
	Settings *config.Config
}

func (p Project) fs() filesystem.FS {
	if p.FS == nil {
		return filesystem.NewOS()
	}
	return p.FS
}

func (p Project) dir() string {
	if p.Dir == "" {
		return "."
	}
	return p.Dir
}

func (p Project) settings() *config.Config {
	if p.Settings == nil {
		return config.Default()
	}
	return p.Settings
}

// locateSchema returns the existing schema file
func (p Project) locateSchema() (string, error) {
	return schema.Locate(p.fs(), p.dir(), p.SchemaFile, p.settings().Files.Schema, errors.ErrSchemaNotFound)
}

// locateConfiguration returns the existing configuration file
func (p Project) locateConfiguration() (string, error) {
	return schema.Locate(p.fs(), p.dir(), p.ConfigFile, p.settings().Files.Config, errors.ErrConfigNotFound)
}

// target resolves where a new document is written: the explicit name or
// the first candidate
func (p Project) target(explicit string, candidates []string, fallback string) string {
	name := explicit
	if name == "" {
		name = fallback
		if len(candidates) > 0 {
			name = candidates[0]
		}
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.dir(), name)
}

func (p Project) loadSchema() (string, *schema.Schema, error) {
	path, err := p.locateSchema()
	if err != nil {
		return "", nil, err
	}
	s, err := schema.Load(p.fs(), path)
	if err != nil {
		return "", nil, err
	}
	return path, s, nil
}

// load reads both documents
func (p Project) load() (*Documents, error) {
	schemaPath, s, err := p.loadSchema()
	if err != nil {
		return nil, err
	}
	configPath, err := p.locateConfiguration()
	if err != nil {
		return nil, err
	}
	c, err := schema.LoadConfiguration(p.fs(), configPath)
	if err != nil {
		return nil, err
	}
	return &Documents{SchemaPath: schemaPath, ConfigPath: configPath, Schema: s, Configuration: c}, nil
}

func (p Project) executor() *pipeline.Executor {
	return newExecutor(p.settings().Pipeline.StrictLiterals)
}

func newExecutor(strict bool) *pipeline.Executor {
	return builtins.NewExecutor(pipeline.ExecutorOptions{StrictLiterals: strict})
}

func (p Project) builder() *command.Builder {
	settings := p.settings()
	return command.NewBuilder(p.executor(), command.BuilderOptions{
		Executable: settings.Make.DefaultBin,
		Workers:    settings.Pipeline.Workers,
	})
}

// Documents is a loaded schema and configuration pair
type Documents struct {
	SchemaPath    string
	ConfigPath    string
	Schema        *schema.Schema
	Configuration *schema.Configuration
}
