package pipeline

import (
	"strings"

	"github.com/arthur-debert/amake/pkg/value"
)

// Stage is one parsed step of a pipeline
type Stage struct {
	Name     string
	Position int
	Function Function
	Args     []value.Value
	// Tokens holds the raw argument tokens as written
	Tokens []string
}

// Text renders the stage with single spaces between name and tokens
func (s Stage) Text() string {
	return strings.Join(append([]string{s.Name}, s.Tokens...), " ")
}

// Program is a parsed pipeline. A program without stages is the identity.
type Program struct {
	Source string
	Stages []Stage
}

// IsIdentity reports whether running the program returns its input unchanged
func (p *Program) IsIdentity() bool {
	return len(p.Stages) == 0
}

// String renders the program in canonical form: stages joined by " | "
func (p *Program) String() string {
	parts := make([]string, len(p.Stages))
	for i, s := range p.Stages {
		parts[i] = s.Text()
	}
	return strings.Join(parts, " | ")
}

// Names returns the stage names in order
func (p *Program) Names() []string {
	names := make([]string, len(p.Stages))
	for i, s := range p.Stages {
		names[i] = s.Name
	}
	return names
}
