// Package makeoptions defines the make command-line options a configuration
// may set and the pipelines that render them into arguments.
package makeoptions

import (
	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/registry"
	"github.com/arthur-debert/amake/pkg/value"
)

// Option keys as they appear in a configuration's "options" object
const (
	MakeBin      = "_make_bin"
	Override     = "_override"
	Debug        = "_debug"
	Directory    = "_directory"
	Makefile     = "_makefile"
	IncludeDir   = "_include_dir"
	Jobs         = "_jobs"
	AlwaysMake   = "_always_make"
	IgnoreErrors = "_ignore_errors"
	DryRun       = "_dry_run"
	Extras       = "_extras"
)

// Option is one make option definition
type Option struct {
	Name        string
	Type        string
	Pipeline    string
	Default     value.Value
	Label       string
	Description string
}

// Rendered reports whether the option becomes command-line arguments.
// _make_bin and _override configure the plan itself.
func (o Option) Rendered() bool {
	return o.Name != MakeBin && o.Name != Override
}

var definitions = []Option{
	{
		Name:        MakeBin,
		Type:        "file_t",
		Pipeline:    "strip | posixpath",
		Default:     value.String("make"),
		Label:       "make command",
		Description: "make command or path to make executable.",
	},
	{
		Name:        Override,
		Type:        "bool",
		Pipeline:    "to_bool",
		Default:     value.Bool(true),
		Label:       "override makefile variables",
		Description: "override makefile variables with the same name using -e option.",
	},
	{
		Name:        Debug,
		Type:        "loose_choice_t",
		Pipeline:    "strip | prefix_ifneq '' '--debug='",
		Default:     value.String(""),
		Label:       "debug level(--debug)",
		Description: "debug level of make.",
	},
	{
		Name:        Directory,
		Type:        "directory_t",
		Pipeline:    "strip | posixpath | prefix_ifneq '' '--directory='",
		Default:     value.String(""),
		Label:       "makefile directory(--directory)",
		Description: "the directory where makefile is located.",
	},
	{
		Name:        Makefile,
		Type:        "file_t",
		Pipeline:    "strip | posixpath | prefix_ifneq '' '--makefile='",
		Default:     value.String(""),
		Label:       "makefile(--makefile)",
		Description: "the makefile to be used.",
	},
	{
		Name:        IncludeDir,
		Type:        "dir_list_t",
		Pipeline:    "no_empty | posixpath_each | pretend_each '-I'",
		Default:     value.List(),
		Label:       "include directories(--include-dir)",
		Description: "directories to search for makefiles.",
	},
	{
		Name:        Jobs,
		Type:        "int_r",
		Pipeline:    "to_str | strip | prefix_ifneq '' '--jobs='",
		Default:     value.Int(1),
		Label:       "jobs count(--jobs)",
		Description: "number of jobs to run simultaneously.",
	},
	{
		Name:        AlwaysMake,
		Type:        "bool",
		Pipeline:    "ifelse '--always-make' ''",
		Default:     value.Bool(false),
		Label:       "always make(--always-make)",
		Description: "always remake everything, even if the target is up to date.",
	},
	{
		Name:        IgnoreErrors,
		Type:        "bool",
		Pipeline:    "ifelse '--ignore-errors' ''",
		Default:     value.Bool(false),
		Label:       "ignore errors(--ignore-errors)",
		Description: "ignore errors and keep going.",
	},
	{
		Name:        DryRun,
		Type:        "bool",
		Pipeline:    "ifelse '--dry-run' ''",
		Default:     value.Bool(false),
		Label:       "dry run(--dry-run)",
		Description: "don't actually run any commands.",
	},
	{
		Name:        Extras,
		Type:        "text_t",
		Pipeline:    "strip | shlex_split",
		Default:     value.String(""),
		Label:       "extra options",
		Description: "extra options to be passed to make command.",
	},
}

var table = newTable()

func newTable() registry.Registry[Option] {
	r := registry.New[Option]()
	for _, opt := range definitions {
		registry.MustRegister(r, opt.Name, opt)
	}
	r.Freeze()
	return r
}

// All returns the option definitions in their canonical order
func All() []Option {
	return append([]Option(nil), definitions...)
}

// Has reports whether name is a known option
func Has(name string) bool {
	return table.Has(name)
}

// Lookup returns the definition of name
func Lookup(name string) (Option, error) {
	opt, err := table.Get(name)
	if err != nil {
		return Option{}, errors.Newf(errors.ErrOptionNotFound, "no such make option: %s", name).
			WithDetail("option", name)
	}
	return opt, nil
}

// Conflicts returns the names that collide with option names, which a
// schema must not use for its own variables
func Conflicts(names []string) []string {
	var out []string
	for _, name := range names {
		if Has(name) {
			out = append(out, name)
		}
	}
	return out
}
