package pipeline

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/registry"
)

// FunctionRegistry maps stage names to functions. Names are case sensitive.
// It is populated once, then frozen before pipelines run against it.
type FunctionRegistry struct {
	items registry.Registry[Function]
}

// NewFunctionRegistry creates an empty registry
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{items: registry.New[Function]()}
}

// Register adds fn under fn.Name
func (r *FunctionRegistry) Register(fn Function) error {
	return r.RegisterAs(fn.Name, fn)
}

// RegisterAs adds fn under name, which lets one function serve several aliases
func (r *FunctionRegistry) RegisterAs(name string, fn Function) error {
	if err := fn.validate(); err != nil {
		return err
	}
	fn.Name = name
	if err := r.items.Register(name, fn); err != nil {
		if errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			return errors.Wrapf(err, errors.ErrAlreadyExists, "pipeline function already exists: %s", name).
				WithDetail("stage", name)
		}
		return err
	}
	return nil
}

// MustRegister registers fn and panics on failure
func (r *FunctionRegistry) MustRegister(fn Function) {
	if err := r.Register(fn); err != nil {
		panic(err)
	}
}

// Unregister removes a function
func (r *FunctionRegistry) Unregister(name string) error {
	if err := r.items.Remove(name); err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			return r.notFound(name)
		}
		return err
	}
	return nil
}

// Resolve returns the function registered under name
func (r *FunctionRegistry) Resolve(name string) (Function, error) {
	fn, err := r.items.Get(name)
	if err != nil {
		return Function{}, r.notFound(name)
	}
	return fn, nil
}

// Has reports whether name is registered
func (r *FunctionRegistry) Has(name string) bool {
	return r.items.Has(name)
}

// Names returns the registered names in sorted order
func (r *FunctionRegistry) Names() []string {
	return r.items.List()
}

// Functions returns the registered functions sorted by name
func (r *FunctionRegistry) Functions() []Function {
	names := r.items.List()
	fns := make([]Function, 0, len(names))
	for _, name := range names {
		if fn, err := r.items.Get(name); err == nil {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Len returns the number of registered functions
func (r *FunctionRegistry) Len() int {
	return r.items.Count()
}

// Freeze makes the registry read-only
func (r *FunctionRegistry) Freeze() {
	r.items.Freeze()
}

// Frozen reports whether the registry is read-only
func (r *FunctionRegistry) Frozen() bool {
	return r.items.Frozen()
}

func (r *FunctionRegistry) notFound(name string) *errors.AmakeError {
	err := errors.Newf(errors.ErrStageNotFound, "pipeline function not found: %s", name).
		WithDetail("stage", name)
	if suggestion := r.Suggest(name); suggestion != "" {
		err.WithDetail("suggestion", suggestion)
	}
	return err
}

// maxSuggestDistance bounds how far a suggestion may be from the unknown name
const maxSuggestDistance = 3

// Suggest returns the registered name closest to name, or "" when nothing is close
func (r *FunctionRegistry) Suggest(name string) string {
	if name == "" {
		return ""
	}
	names := r.items.List()

	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		if ranks[0].Distance <= maxSuggestDistance {
			return ranks[0].Target
		}
	}

	best, bestDistance := "", maxSuggestDistance
	for _, candidate := range names {
		if d := fuzzy.LevenshteinDistance(name, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}
