package command

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/logging"
	"github.com/arthur-debert/amake/pkg/makeoptions"
	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/schema"
)

// BuilderOptions configures a Builder
type BuilderOptions struct {
	// Executable replaces an empty _make_bin. Defaults to "make".
	Executable string
	// Workers caps concurrent pipeline evaluation
	Workers int
}

// Builder turns a schema and a configuration into a Plan
type Builder struct {
	executor *pipeline.Executor
	opts     BuilderOptions
	logger   zerolog.Logger
}

// NewBuilder returns a builder evaluating pipelines with executor
func NewBuilder(executor *pipeline.Executor, opts BuilderOptions) *Builder {
	if opts.Executable == "" {
		opts.Executable = DefaultExecutable
	}
	return &Builder{
		executor: executor,
		opts:     opts,
		logger:   logging.GetLogger("command.builder"),
	}
}

// Bindings lists what Build evaluates: the configured options in file
// order, then the configured variables with the schema's pipelines.
// Variables the schema does not define pass through unchanged.
func Bindings(s *schema.Schema, c *schema.Configuration) ([]pipeline.Binding, error) {
	var bindings []pipeline.Binding

	for _, name := range c.Options.Keys() {
		opt, err := makeoptions.Lookup(name)
		if err != nil {
			return nil, err
		}
		raw, _, err := c.Option(name)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, pipeline.Binding{Name: opt.Name, Value: raw, Pipeline: opt.Pipeline})
	}

	for _, name := range c.Variables.Keys() {
		raw, _, err := c.VariableValue(name)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, pipeline.Binding{Name: name, Value: raw, Pipeline: s.PipelineOf(name)})
	}
	return bindings, nil
}

// Build evaluates every binding and assembles the plan. The first failing
// pipeline aborts the build; its error names the option or variable.
func (b *Builder) Build(ctx context.Context, s *schema.Schema, c *schema.Configuration) (*Plan, error) {
	bindings, err := Bindings(s, c)
	if err != nil {
		return nil, err
	}

	results, err := b.executor.EvaluateAll(ctx, bindings, pipeline.EvaluateOptions{Workers: b.opts.Workers})
	if err != nil {
		return nil, err
	}

	optionCount := c.Options.Len()
	plan := &Plan{Executable: b.opts.Executable, Target: c.Target}

	for i, r := range results {
		if r.Err != nil {
			return nil, errors.Wrapf(r.Err, errors.GetErrorCode(r.Err), "cannot evaluate '%s'", r.Name).
				WithDetail("variable", r.Name)
		}

		if i >= optionCount {
			plan.Variables = append(plan.Variables, Assignment{Name: r.Name, Value: r.Output})
			continue
		}

		switch r.Name {
		case makeoptions.MakeBin:
			if exe := r.Output.String(); r.Output.Truthy() {
				plan.Executable = exe
			}
		case makeoptions.Override:
			plan.Override = r.Output.Truthy()
		default:
			plan.Options = append(plan.Options, r.Output)
		}
	}

	b.logger.Debug().
		Str("executable", plan.Executable).
		Str("target", plan.Target).
		Int("options", len(plan.Options)).
		Int("variables", len(plan.Variables)).
		Bool("override", plan.Override).
		Msg("Command plan built")
	args := plan.Args()
	logging.LogCommand(args[0], args[1:])
	return plan, nil
}
