package pipeline

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/amake/pkg/value"
)

// TraceEntry records one executed stage
type TraceEntry struct {
	Index  int
	Name   string
	Args   []value.Value
	Input  value.Value
	Output value.Value
}

// Observer receives trace entries as stages complete
type Observer interface {
	OnStage(entry TraceEntry)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(entry TraceEntry)

func (f ObserverFunc) OnStage(entry TraceEntry) { f(entry) }

// ArgsText renders the arguments as "(a,b)" or "<NoArgs>"
func (e TraceEntry) ArgsText() string {
	if len(e.Args) == 0 {
		return "<NoArgs>"
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// String renders the entry as a single debug line:
//
//	(0) strip        input =   a  (type:str)  args = <NoArgs>  output = a (type:str)
func (e TraceEntry) String() string {
	return fmt.Sprintf("%-15s  input = %s (type:%s)  args = %s  output = %s (type:%s)",
		fmt.Sprintf("(%d) %s", e.Index, e.Name),
		e.Input.String(), e.Input.TypeName(),
		e.ArgsText(),
		e.Output.String(), e.Output.TypeName())
}

// FormatTrace renders entries one per line
func FormatTrace(entries []TraceEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
