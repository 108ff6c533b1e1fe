package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/filesystem"
	"github.com/arthur-debert/amake/pkg/logging"
	"github.com/arthur-debert/amake/pkg/ui"
)

// GenerateOptions holds options for the generate command
type GenerateOptions struct {
	Project
	// Output is the script path; empty uses the configured build script
	Output string
	// Overwrite replaces an existing script without asking
	Overwrite bool
	// Confirm is asked before replacing an existing script. A nil Confirm
	// refuses.
	Confirm func(path string) bool
}

// GenerateResult describes the written build script
type GenerateResult struct {
	Path    string `json:"path"`
	Command string `json:"command"`
	Aborted bool   `json:"aborted,omitempty"`
}

// Generate writes the project's make command to an executable shell script
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	logger := logging.GetLogger("commands.generate")
	fsys := opts.fs()

	path := opts.target(opts.Output, nil, opts.settings().Files.BuildScript)

	if exists, _ := filesystem.Exists(fsys, path); exists && !opts.Overwrite {
		if opts.Confirm == nil || !opts.Confirm(path) {
			logger.Info().Str("path", path).Msg("Build script exists, not overwriting")
			return &GenerateResult{Path: path, Aborted: true}, nil
		}
	}

	_, plan, err := buildPlan(ctx, opts.Project)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory '%s'", filepath.ToSlash(dir)).
				WithDetail("path", path)
		}
	}
	if err := fsys.WriteFile(path, []byte(plan.Script()), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to generate build script '%s'", filepath.ToSlash(path)).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Build script generated")
	return &GenerateResult{Path: path, Command: plan.String()}, nil
}

// Text implements ui.Textual
func (r *GenerateResult) Text(s ui.Styler) string {
	if r.Aborted {
		return s.Style("Warning", "Aborted.") + " " + s.Style("Path", filepath.ToSlash(r.Path)) + " already exists."
	}
	return fmt.Sprintf("Build script generated successfully, saved to: %s", s.Style("Path", filepath.ToSlash(r.Path)))
}
