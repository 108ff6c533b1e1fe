package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/filesystem"
	"github.com/arthur-debert/amake/pkg/logging"
	"github.com/arthur-debert/amake/pkg/schema"
	"github.com/arthur-debert/amake/pkg/ui"
)

// InitOptions holds options for the init command
type InitOptions struct {
	Project
	// Template names a schema template; empty selects schema.DefaultTemplate
	Template string
	// Force overwrites an existing schema
	Force bool
	// Now stamps created_at; zero means time.Now
	Now time.Time
}

// InitResult describes the schema written by Init
type InitResult struct {
	Path      string   `json:"path"`
	Template  string   `json:"template"`
	Variables []string `json:"variables"`
}

// Init writes a new schema file from a template
func Init(opts InitOptions) (*InitResult, error) {
	logger := logging.GetLogger("commands.init")
	fsys := opts.fs()

	if !opts.Force {
		if existing, err := opts.locateSchema(); err == nil {
			return nil, errors.Newf(errors.ErrFileExists, "schema file '%s' already exists", filepath.ToSlash(existing)).
				WithDetail("path", existing)
		}
	}

	template := opts.Template
	if template == "" {
		template = schema.DefaultTemplate
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	s, err := schema.FromTemplate(template, now)
	if err != nil {
		return nil, err
	}

	path := opts.target(opts.SchemaFile, opts.settings().Files.Schema, schema.DefaultSchemaFile)
	logger.Info().Str("template", template).Str("path", path).Msg("Writing schema")
	if err := s.Save(fsys, path); err != nil {
		return nil, err
	}

	return &InitResult{Path: path, Template: template, Variables: s.Variables.Keys()}, nil
}

// Text implements ui.Textual
func (r *InitResult) Text(s ui.Styler) string {
	return fmt.Sprintf("Schema file initialized at %s from the %s template (%d variables).",
		s.Style("Path", filepath.ToSlash(r.Path)),
		s.Style("Name", r.Template),
		len(r.Variables))
}

// InitConfigOptions holds options for the init-config command
type InitConfigOptions struct {
	Project
	// Force overwrites an existing configuration
	Force bool
}

// InitConfigResult describes the configuration written by InitConfig
type InitConfigResult struct {
	SchemaPath string   `json:"schema"`
	Path       string   `json:"path"`
	Options    []string `json:"options"`
	Variables  []string `json:"variables"`
}

// InitConfig writes a configuration holding the defaults of every make
// option and schema variable
func InitConfig(opts InitConfigOptions) (*InitConfigResult, error) {
	logger := logging.GetLogger("commands.initconfig")
	fsys := opts.fs()

	schemaPath, s, err := opts.loadSchema()
	if err != nil {
		return nil, err
	}

	path := opts.target(opts.ConfigFile, opts.settings().Files.Config, schema.DefaultConfigFile)
	if exists, _ := filesystem.Exists(fsys, path); exists && !opts.Force {
		return nil, errors.Newf(errors.ErrFileExists, "config file '%s' already exists", filepath.ToSlash(path)).
			WithDetail("path", path)
	}

	c, err := schema.ConfigurationFromSchema(s)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("schema", schemaPath).Str("path", path).Msg("Writing configuration")
	if err := c.Save(fsys, path); err != nil {
		return nil, err
	}

	return &InitConfigResult{
		SchemaPath: schemaPath,
		Path:       path,
		Options:    c.Options.Keys(),
		Variables:  c.Variables.Keys(),
	}, nil
}

// Text implements ui.Textual
func (r *InitConfigResult) Text(s ui.Styler) string {
	return fmt.Sprintf("Config file initialized at %s.", s.Style("Path", filepath.ToSlash(r.Path)))
}
