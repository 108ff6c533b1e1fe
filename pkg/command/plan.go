// Package command assembles the make invocation from evaluated options and
// variables.
package command

import (
	"github.com/alessio/shellescape"

	"github.com/arthur-debert/amake/pkg/value"
)

// DefaultExecutable is used when no make binary is configured
const DefaultExecutable = "make"

// Assignment is one NAME=value pair passed to make
type Assignment struct {
	Name  string
	Value value.Value
}

// Text renders the assignment as NAME=value, using the value's str() form
func (a Assignment) Text() string {
	return a.Name + "=" + a.Value.String()
}

// Plan is a fully evaluated make invocation
type Plan struct {
	Executable string
	Target     string
	// Options holds rendered option values in order. Falsy values are
	// skipped and sequences are spliced when building the argv.
	Options   []value.Value
	Variables []Assignment
	// Override passes each assignment with -e so it wins over the
	// Makefile's own definitions
	Override bool
}

// Args returns the argument vector, executable first
func (p *Plan) Args() []string {
	exe := p.Executable
	if exe == "" {
		exe = DefaultExecutable
	}
	args := []string{exe}

	if p.Target != "" {
		args = append(args, p.Target)
	}

	for _, opt := range p.Options {
		if !opt.Truthy() {
			continue
		}
		if opt.IsSequence() {
			for _, item := range opt.Items() {
				args = append(args, item.String())
			}
			continue
		}
		args = append(args, opt.String())
	}

	for _, a := range p.Variables {
		if p.Override {
			args = append(args, "-e")
		}
		args = append(args, a.Text())
	}
	return args
}

// String returns the argv as one shell-quoted line
func (p *Plan) String() string {
	return shellescape.QuoteCommand(p.Args())
}

// Script renders a POSIX shell script running the plan
func (p *Plan) Script() string {
	return "#!/bin/sh\n" + p.String() + "\n"
}
