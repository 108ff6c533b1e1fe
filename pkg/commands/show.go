package commands

import (
	"context"
	"strings"

	"github.com/arthur-debert/amake/pkg/command"
	"github.com/arthur-debert/amake/pkg/ui"
)

// ShowOptions holds options for the show command
type ShowOptions struct {
	Project
}

// ShowResult is the make command a project builds
type ShowResult struct {
	SchemaPath string   `json:"schema"`
	ConfigPath string   `json:"config"`
	Args       []string `json:"args"`
	Command    string   `json:"command"`
}

// Show builds the command plan without writing anything
func Show(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	docs, plan, err := buildPlan(ctx, opts.Project)
	if err != nil {
		return nil, err
	}
	return &ShowResult{
		SchemaPath: docs.SchemaPath,
		ConfigPath: docs.ConfigPath,
		Args:       plan.Args(),
		Command:    plan.String(),
	}, nil
}

func buildPlan(ctx context.Context, p Project) (*Documents, *command.Plan, error) {
	docs, err := p.load()
	if err != nil {
		return nil, nil, err
	}
	plan, err := p.builder().Build(ctx, docs.Schema, docs.Configuration)
	if err != nil {
		return nil, nil, err
	}
	return docs, plan, nil
}

// Text implements ui.Textual
func (r *ShowResult) Text(s ui.Styler) string {
	var b strings.Builder
	b.WriteString(s.Style("Command", r.Command))
	b.WriteString("\n")
	return b.String()
}
