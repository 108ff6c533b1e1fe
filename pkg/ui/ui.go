// Package ui renders command results and errors in the output formats amake
// supports: rich terminal output, plain text, JSON and YAML.
//
// Results that know how to describe themselves implement Textual; the
// machine formats serialize results directly.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/amake/pkg/errors"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Textual is implemented by results with a human readable form
type Textual interface {
	Text(s Styler) string
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &textRenderer{output: output, styler: Rich{}}, nil
	case FormatText:
		return &textRenderer{output: output, styler: Plain{}}, nil
	case FormatJSON:
		return &jsonRenderer{output: output}, nil
	case FormatYAML:
		return &yamlRenderer{output: output}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidArgument, "unknown format: %v", format)
	}
}

// textRenderer writes human readable output through a Styler
type textRenderer struct {
	output io.Writer
	styler Styler
}

func (r *textRenderer) RenderResult(result interface{}) error {
	var text string
	switch v := result.(type) {
	case Textual:
		text = v.Text(r.styler)
	case string:
		text = v
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprintf("%+v", v)
	}
	return r.write(text)
}

func (r *textRenderer) RenderError(err error) error {
	return r.write(r.styler.Error(err))
}

func (r *textRenderer) RenderMessage(msg string) error {
	return r.write(msg)
}

func (r *textRenderer) write(text string) error {
	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(r.output, text)
	return err
}

// errorDocument is the machine readable form of an error
type errorDocument struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    string                 `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

func newErrorDocument(err error) errorDocument {
	return errorDocument{
		Error:   err.Error(),
		Code:    string(errors.GetErrorCode(err)),
		Details: errors.GetErrorDetails(err),
	}
}

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	output io.Writer
}

func (r *jsonRenderer) encode(v interface{}) error {
	encoder := json.NewEncoder(r.output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func (r *jsonRenderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encode(newErrorDocument(err))
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

// yamlRenderer provides YAML output for machine consumption
type yamlRenderer struct {
	output io.Writer
}

func (r *yamlRenderer) encode(v interface{}) error {
	data, err := ToYAML(v)
	if err != nil {
		return err
	}
	_, err = r.output.Write(data)
	return err
}

func (r *yamlRenderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

func (r *yamlRenderer) RenderError(err error) error {
	return r.encode(newErrorDocument(err))
}

func (r *yamlRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

// ToYAML serializes v through its JSON form so results share one set of
// field names and key order across both machine formats
func ToYAML(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode result")
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to convert result to yaml")
	}
	resetStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
	}
	return out, nil
}

// resetStyle drops the flow and quoting styles carried over from JSON
func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
