package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/amake/pkg/value"
)

// Binding is one variable to evaluate: its raw value and the pipeline applied to it
type Binding struct {
	Name     string
	Value    value.Value
	Pipeline string
}

// Result is the outcome of evaluating a Binding. Err is set when the
// pipeline failed; Output is then None.
type Result struct {
	Name     string
	Input    value.Value
	Pipeline string
	Output   value.Value
	Trace    []TraceEntry
	Err      error
}

// EvaluateOptions controls EvaluateAll
type EvaluateOptions struct {
	// Workers caps concurrent evaluations. Values below 1 mean sequential.
	Workers int
	// Trace records trace entries on each result
	Trace bool
}

// EvaluateAll runs every binding's pipeline and returns results in input
// order. A failing pipeline is recorded on its Result and does not stop the
// others; the returned error only reports cancellation of ctx.
func (e *Executor) EvaluateAll(ctx context.Context, bindings []Binding, opts EvaluateOptions) ([]Result, error) {
	results := make([]Result, len(bindings))

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	errGrp, gCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(workers)
	for i, binding := range bindings {
		idx, b := i, binding
		errGrp.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[idx] = e.evaluate(b, opts.Trace)
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Executor) evaluate(b Binding, trace bool) Result {
	result := Result{Name: b.Name, Input: b.Value, Pipeline: b.Pipeline}

	var (
		out value.Value
		err error
	)
	if trace {
		out, result.Trace, err = e.Trace(b.Pipeline, b.Value)
	} else {
		out, err = e.Execute(b.Pipeline, b.Value)
	}
	if err != nil {
		e.logger.Debug().Err(err).Str("variable", b.Name).Msg("Pipeline evaluation failed")
		result.Err = err
		return result
	}
	result.Output = out
	return result
}

// FirstError returns the first failed result's error, or nil
func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
