package commands

import (
	"strings"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/literal"
	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/ui"
	"github.com/arthur-debert/amake/pkg/value"
)

// EvalOptions holds options for the eval command
type EvalOptions struct {
	// Pipeline is the pipeline text to run
	Pipeline string
	// Input is a literal token for the initial value; it goes through the
	// same literal rules as stage arguments
	Input string
	// Trace records every stage
	Trace bool
	// StrictLiterals rejects arguments that are not valid literals
	StrictLiterals bool
}

// EvalResult is the outcome of an eval
type EvalResult struct {
	Pipeline string        `json:"pipeline"`
	Program  string        `json:"program"`
	Input    value.Value   `json:"input"`
	Output   value.Value   `json:"output"`
	Type     string        `json:"type"`
	Stages   []StageReport `json:"stages,omitempty"`
}

// Eval runs a pipeline on a literal input with the built-in functions
func Eval(opts EvalOptions) (*EvalResult, error) {
	executor := newExecutor(opts.StrictLiterals)

	var fallback literal.Fallback = literal.AsString
	if opts.StrictLiterals {
		fallback = nil
	}
	input, err := literal.ParseWith(opts.Input, fallback)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid input value").
			WithDetail("input", opts.Input)
	}

	program, err := executor.Parse(opts.Pipeline)
	if err != nil {
		return nil, err
	}

	result := &EvalResult{Pipeline: opts.Pipeline, Program: program.String(), Input: input}

	var observer pipeline.Observer
	if opts.Trace {
		observer = pipeline.ObserverFunc(func(entry pipeline.TraceEntry) {
			result.Stages = append(result.Stages, StageReport{
				Index:  entry.Index,
				Stage:  entry.Name,
				Args:   entry.Args,
				Input:  entry.Input,
				Output: entry.Output,
			})
		})
	}

	out, err := executor.Run(program, input, observer)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Type = out.TypeName()
	return result, nil
}

// Text implements ui.Textual
func (r *EvalResult) Text(s ui.Styler) string {
	var b strings.Builder
	for _, st := range r.Stages {
		entry := pipeline.TraceEntry{Index: st.Index, Name: st.Stage, Args: st.Args, Input: st.Input, Output: st.Output}
		b.WriteString(s.Style("Muted", entry.String()))
		b.WriteString("\n")
	}
	b.WriteString(typed(s, r.Output))
	return b.String()
}
