package commands

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arthur-debert/amake/pkg/builtins"
	"github.com/arthur-debert/amake/pkg/ui"
)

// FunctionsOptions holds options for the functions command
type FunctionsOptions struct {
	// Filter keeps names that fuzzily match it
	Filter string
	// Doc renders a markdown reference instead of a table
	Doc bool
}

// FunctionInfo describes one registered stage function
type FunctionInfo struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	InputOnly bool   `json:"input_only"`
	AliasOf   string `json:"alias_of,omitempty"`
	Doc       string `json:"doc"`
}

// FunctionsResult lists stage functions by name
type FunctionsResult struct {
	Functions []FunctionInfo `json:"functions"`
	Doc       bool           `json:"-"`
}

// Functions lists the built-in stage functions and aliases
func Functions(opts FunctionsOptions) *FunctionsResult {
	aliases := builtins.Aliases()
	result := &FunctionsResult{Functions: []FunctionInfo{}, Doc: opts.Doc}

	for _, fn := range builtins.NewRegistry().Functions() {
		if opts.Filter != "" && !fuzzy.MatchFold(opts.Filter, fn.Name) {
			continue
		}
		result.Functions = append(result.Functions, FunctionInfo{
			Name:      fn.Name,
			Signature: fn.Signature(),
			InputOnly: fn.InputOnly(),
			AliasOf:   aliases[fn.Name],
			Doc:       fn.Doc,
		})
	}
	return result
}

// Markdown renders the list as a reference document
func (r *FunctionsResult) Markdown() string {
	var b strings.Builder
	b.WriteString("# Pipeline functions\n\n")
	b.WriteString("Stages are separated by `|`. Each stage is a function name followed by its arguments; ")
	b.WriteString("the input value is passed implicitly.\n")
	for _, fn := range r.Functions {
		fmt.Fprintf(&b, "\n## %s\n\n`%s`\n", fn.Name, fn.Signature)
		if fn.Doc != "" {
			fmt.Fprintf(&b, "\n%s\n", fn.Doc)
		}
		if fn.InputOnly {
			b.WriteString("\nArguments given to this stage are ignored.\n")
		}
	}
	return b.String()
}

// Text implements ui.Textual
func (r *FunctionsResult) Text(s ui.Styler) string {
	if r.Doc {
		return s.Markdown(r.Markdown())
	}
	rows := make([][]string, len(r.Functions))
	for i, fn := range r.Functions {
		rows[i] = []string{fn.Name, fn.Signature, fn.Doc}
	}
	return s.Table([]string{"NAME", "SIGNATURE", "DESCRIPTION"}, rows)
}
