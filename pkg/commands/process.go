package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/amake/pkg/logging"
	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/ui"
	"github.com/arthur-debert/amake/pkg/value"
)

// ProcessOptions holds options for the process command
type ProcessOptions struct {
	Project
	// Variables restricts processing to these names; empty means every
	// schema variable
	Variables []string
}

// StageReport is one traced stage of a variable's pipeline
type StageReport struct {
	Index  int           `json:"index"`
	Stage  string        `json:"stage"`
	Args   []value.Value `json:"args"`
	Input  value.Value   `json:"input"`
	Output value.Value   `json:"output"`
}

// VariableReport is the outcome of processing one variable
type VariableReport struct {
	Name string `json:"name"`
	// Skipped is set for names the schema does not define
	Skipped  bool          `json:"skipped,omitempty"`
	Initial  value.Value   `json:"initial"`
	Pipeline string        `json:"pipeline"`
	Stages   []StageReport `json:"stages,omitempty"`
	Output   *value.Value  `json:"output,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// ProcessResult holds the reports of a process run
type ProcessResult struct {
	SchemaPath string           `json:"schema"`
	ConfigPath string           `json:"config"`
	All        bool             `json:"all"`
	Variables  []VariableReport `json:"variables"`
	Failed     []string         `json:"failed"`
}

// Process runs the pipelines of schema variables with tracing. A failing
// variable is reported and does not stop the others.
func Process(ctx context.Context, opts ProcessOptions) (*ProcessResult, error) {
	logger := logging.GetLogger("commands.process")

	docs, err := opts.load()
	if err != nil {
		return nil, err
	}

	result := &ProcessResult{
		SchemaPath: docs.SchemaPath,
		ConfigPath: docs.ConfigPath,
		All:        len(opts.Variables) == 0,
		Failed:     []string{},
	}

	names := opts.Variables
	if result.All {
		names = docs.Schema.Variables.Keys()
	}

	var bindings []pipeline.Binding
	var slots []int
	for _, name := range names {
		report := VariableReport{Name: name}
		if !docs.Schema.HasVariable(name) {
			logger.Warn().Str("variable", name).Msg("Variable not defined in schema, skipping")
			report.Skipped = true
			result.Variables = append(result.Variables, report)
			continue
		}

		initial, ok, err := docs.Configuration.VariableValue(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			def, err := docs.Schema.Variable(name)
			if err != nil {
				return nil, err
			}
			initial = def.Default
		}

		report.Initial = initial
		report.Pipeline = docs.Schema.PipelineOf(name)
		slots = append(slots, len(result.Variables))
		result.Variables = append(result.Variables, report)
		bindings = append(bindings, pipeline.Binding{Name: name, Value: initial, Pipeline: report.Pipeline})
	}

	results, err := opts.executor().EvaluateAll(ctx, bindings, pipeline.EvaluateOptions{
		Workers: opts.settings().Pipeline.Workers,
		Trace:   true,
	})
	if err != nil {
		return nil, err
	}

	for i, r := range results {
		report := &result.Variables[slots[i]]
		for _, entry := range r.Trace {
			report.Stages = append(report.Stages, StageReport{
				Index:  entry.Index,
				Stage:  entry.Name,
				Args:   entry.Args,
				Input:  entry.Input,
				Output: entry.Output,
			})
		}
		if r.Err != nil {
			report.Error = r.Err.Error()
			result.Failed = append(result.Failed, r.Name)
			continue
		}
		out := r.Output
		report.Output = &out
	}

	logger.Info().
		Int("variables", len(bindings)).
		Int("failed", len(result.Failed)).
		Msg("Variables processed")
	return result, nil
}

func label(s ui.Styler, text string) string {
	return s.Style("Label", fmt.Sprintf("%-15s", text)) + " : "
}

func typed(s ui.Styler, v value.Value) string {
	return s.Style("Value", v.String()) + " " + s.Style("Type", "(type:"+v.TypeName()+")")
}

// Text implements ui.Textual
func (r *ProcessResult) Text(s ui.Styler) string {
	var b strings.Builder
	b.WriteString(label(s, "Schema File") + s.Style("Path", filepath.ToSlash(r.SchemaPath)) + "\n")
	b.WriteString(label(s, "Config File") + s.Style("Path", filepath.ToSlash(r.ConfigPath)) + "\n")
	if r.All {
		b.WriteString(label(s, "Variables") + "all\n")
	} else {
		names := make([]string, len(r.Variables))
		for i, v := range r.Variables {
			names[i] = v.Name
		}
		b.WriteString(label(s, "Variables") + strings.Join(names, ", ") + "\n")
	}

	for _, v := range r.Variables {
		b.WriteString("\n")
		b.WriteString(label(s, "Variable Name") + s.Style("Name", v.Name) + "\n")
		if v.Skipped {
			b.WriteString(label(s, "Warning") + s.Style("Warning", "Skipped (not defined in schema)") + "\n")
			continue
		}
		b.WriteString(label(s, "Initial Value") + typed(s, v.Initial) + "\n")

		if strings.TrimSpace(v.Pipeline) == "" {
			b.WriteString(label(s, "Pipeline") + s.Style("Muted", "No pipeline defined") + "\n")
		} else {
			b.WriteString(label(s, "Pipeline") + s.Style("Pipeline", v.Pipeline) + "\n")
		}

		if len(v.Stages) > 0 {
			rows := make([][]string, len(v.Stages))
			for i, st := range v.Stages {
				entry := pipeline.TraceEntry{Args: st.Args}
				rows[i] = []string{
					strconv.Itoa(st.Index),
					st.Stage,
					st.Input.Repr() + " (" + st.Input.TypeName() + ")",
					entry.ArgsText(),
					st.Output.Repr() + " (" + st.Output.TypeName() + ")",
				}
			}
			b.WriteString(s.Table([]string{"#", "STAGE", "INPUT", "ARGS", "OUTPUT"}, rows))
			b.WriteString("\n")
		}

		if v.Error != "" {
			b.WriteString(label(s, "Error") + s.Style("Error", v.Error) + "\n")
			continue
		}
		if v.Output != nil {
			b.WriteString(label(s, "Final Value") + typed(s, *v.Output) + "\n")
		}
	}

	if len(r.Failed) > 0 {
		b.WriteString("\n" + label(s, "Failed") + s.Style("Error", strings.Join(r.Failed, ", ")) + "\n")
	}
	return b.String()
}
