package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/literal"
	"github.com/arthur-debert/amake/pkg/logging"
	"github.com/arthur-debert/amake/pkg/value"
)

// ExecutorOptions tunes how stage arguments are parsed
type ExecutorOptions struct {
	// Fallback converts arguments that are not valid literals. Defaults to
	// literal.AsString.
	Fallback literal.Fallback

	// StrictLiterals makes invalid arguments a parse error instead of
	// falling back
	StrictLiterals bool
}

// Executor parses and runs pipelines against a frozen FunctionRegistry.
// It holds no per-run state and is safe for concurrent use.
type Executor struct {
	functions *FunctionRegistry
	fallback  literal.Fallback
	logger    zerolog.Logger
}

// NewExecutor freezes functions and returns an executor reading from it
func NewExecutor(functions *FunctionRegistry, opts ExecutorOptions) *Executor {
	functions.Freeze()

	fallback := opts.Fallback
	if fallback == nil {
		fallback = literal.AsString
	}
	if opts.StrictLiterals {
		fallback = nil
	}

	return &Executor{
		functions: functions,
		fallback:  fallback,
		logger:    logging.GetLogger("pipeline.executor"),
	}
}

// Functions returns the registry the executor resolves stages against
func (e *Executor) Functions() *FunctionRegistry {
	return e.functions
}

// Parse splits text into stages, resolves each stage name and parses its
// arguments. Blank text yields the identity program.
func (e *Executor) Parse(text string) (*Program, error) {
	program := &Program{Source: text}

	for position, part := range SplitStages(text) {
		tokens := Tokenize(part)
		if len(tokens) == 0 {
			continue
		}
		name := tokens[0]

		fn, err := e.functions.Resolve(name)
		if err != nil {
			e.logger.Debug().Str("stage", name).Int("position", position).Msg("Unknown stage")
			return nil, stageNotFound(err, name, position)
		}

		args := make([]value.Value, 0, len(tokens)-1)
		for _, token := range tokens[1:] {
			arg, err := literal.ParseWith(token, e.fallback)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrLiteralParse, "stage '%s' at position %d has an invalid argument", name, position).
					WithDetail("stage", name).
					WithDetail("position", position)
			}
			args = append(args, arg)
		}

		program.Stages = append(program.Stages, Stage{
			Name:     name,
			Position: position,
			Function: fn,
			Args:     args,
			Tokens:   tokens[1:],
		})
	}

	return program, nil
}

// Execute parses text and runs it on input
func (e *Executor) Execute(text string, input value.Value) (value.Value, error) {
	program, err := e.Parse(text)
	if err != nil {
		return value.None(), err
	}
	return e.Run(program, input, nil)
}

// Trace runs text on input and also returns one entry per executed stage.
// The entries up to a failing stage are returned along with the error.
func (e *Executor) Trace(text string, input value.Value) (value.Value, []TraceEntry, error) {
	program, err := e.Parse(text)
	if err != nil {
		return value.None(), nil, err
	}

	var entries []TraceEntry
	out, err := e.Run(program, input, ObserverFunc(func(entry TraceEntry) {
		entries = append(entries, entry)
	}))
	return out, entries, err
}

// Run executes a parsed program. The observer, when not nil, receives an
// entry after each stage; it cannot change the values passed along.
func (e *Executor) Run(program *Program, input value.Value, observer Observer) (value.Value, error) {
	current := input
	for i, stage := range program.Stages {
		out, err := e.call(stage, current)
		if err != nil {
			e.logger.Debug().Err(err).Str("stage", stage.Name).Int("position", stage.Position).Msg("Stage failed")
			return value.None(), stageFailed(err, stage.Name, stage.Position)
		}

		e.logger.Trace().
			Int("index", i).
			Str("stage", stage.Name).
			Str("input", current.Repr()).
			Str("output", out.Repr()).
			Msg("Stage executed")

		if observer != nil {
			observer.OnStage(TraceEntry{
				Index:  i,
				Name:   stage.Name,
				Args:   append([]value.Value(nil), stage.Args...),
				Input:  current,
				Output: out,
			})
		}
		current = out
	}
	return current, nil
}

// call invokes one stage, turning a panic in the stage function into an error
func (e *Executor) call(stage Stage, input value.Value) (out value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = value.None()
			err = errors.New(errors.ErrInternal, fmt.Sprintf("panic: %v", r))
		}
	}()
	return stage.Function.Invoke(input, stage.Args)
}
