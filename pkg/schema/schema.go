package schema

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/makeoptions"
	"github.com/arthur-debert/amake/pkg/value"
)

// DefaultVersion is the document version written by new files
const DefaultVersion = "1.0.0"

// Schema is the amake.schema.json document
type Schema struct {
	Version       string   `json:"version"`
	Author        string   `json:"author"`
	CreatedAt     string   `json:"created_at"`
	Description   string   `json:"description"`
	Website       string   `json:"website"`
	Targets       []string `json:"targets"`
	DefaultTarget string   `json:"default_target"`
	// Variables maps each name to a scalar default or a definition object
	Variables *Object `json:"variables"`
}

// New returns an empty schema
func New() *Schema {
	return &Schema{Version: DefaultVersion, Targets: []string{}, Variables: NewObject()}
}

// Parse decodes and validates a schema document
func Parse(data []byte) (*Schema, error) {
	s := New()
	if err := decodeStrict(data, s); err != nil {
		return nil, errors.Wrap(err, errors.ErrSchemaInvalid, "invalid schema document")
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode renders the schema as indented JSON
func (s *Schema) Encode() ([]byte, error) {
	s.normalize()
	return encode(s)
}

func (s *Schema) normalize() {
	if s.Targets == nil {
		s.Targets = []string{}
	}
	if s.Variables == nil {
		s.Variables = NewObject()
	}
}

// Validate analyzes every variable definition and rejects names that
// collide with make options
func (s *Schema) Validate() error {
	if _, err := s.ListVariables(); err != nil {
		return err
	}
	if conflicts := makeoptions.Conflicts(s.Variables.Keys()); len(conflicts) > 0 {
		return errors.Newf(errors.ErrSchemaInvalid, "variable names reserved for make options: %v", conflicts).
			WithDetail("variables", conflicts)
	}
	return nil
}

// HasVariable reports whether the schema defines name
func (s *Schema) HasVariable(name string) bool {
	return s.Variables.Has(name)
}

// Variable analyzes the definition of name
func (s *Schema) Variable(name string) (Variable, error) {
	def, ok := s.Variables.Get(name)
	if !ok {
		return Variable{}, errors.Newf(errors.ErrVariableNotFound, "variable '%s' is not defined in the schema", name).
			WithDetail("variable", name)
	}
	return ParseVariable(name, def)
}

// ListVariables analyzes all definitions in declaration order
func (s *Schema) ListVariables() ([]Variable, error) {
	vars := make([]Variable, 0, s.Variables.Len())
	for _, name := range s.Variables.Keys() {
		v, err := s.Variable(name)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// PipelineOf returns the pipeline applied to name, "" when the variable is
// unknown
func (s *Schema) PipelineOf(name string) string {
	v, err := s.Variable(name)
	if err != nil {
		return ""
	}
	return v.Pipeline
}

// Configuration is the amake.config.json document
type Configuration struct {
	Version   string  `json:"version"`
	Target    string  `json:"target"`
	Options   *Object `json:"options"`
	Variables *Object `json:"variables"`
}

// NewConfiguration returns an empty configuration
func NewConfiguration() *Configuration {
	return &Configuration{Version: DefaultVersion, Options: NewObject(), Variables: NewObject()}
}

// ParseConfiguration decodes a configuration document
func ParseConfiguration(data []byte) (*Configuration, error) {
	c := NewConfiguration()
	if err := decodeStrict(data, c); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration document")
	}
	c.normalize()
	return c, nil
}

// Encode renders the configuration as indented JSON
func (c *Configuration) Encode() ([]byte, error) {
	c.normalize()
	return encode(c)
}

func (c *Configuration) normalize() {
	if c.Options == nil {
		c.Options = NewObject()
	}
	if c.Variables == nil {
		c.Variables = NewObject()
	}
}

// Option returns the configured value of a make option
func (c *Configuration) Option(name string) (value.Value, bool, error) {
	return lookupValue(c.Options, name)
}

// VariableValue returns the configured value of a variable
func (c *Configuration) VariableValue(name string) (value.Value, bool, error) {
	return lookupValue(c.Variables, name)
}

func lookupValue(obj *Object, name string) (value.Value, bool, error) {
	raw, ok := obj.Get(name)
	if !ok {
		return value.None(), false, nil
	}
	v, err := value.FromAny(raw)
	if err != nil {
		return value.None(), true, errors.Wrapf(err, errors.ErrConfigParse, "unsupported value for '%s'", name).
			WithDetail("name", name)
	}
	return v, true, nil
}

// ConfigurationFromSchema builds a configuration holding the default of
// every make option and every schema variable
func ConfigurationFromSchema(s *Schema) (*Configuration, error) {
	c := NewConfiguration()
	c.Version = s.Version
	c.Target = s.DefaultTarget

	for _, opt := range makeoptions.All() {
		c.Options.Set(opt.Name, opt.Default)
	}

	vars, err := s.ListVariables()
	if err != nil {
		return nil, err
	}
	for _, v := range vars {
		c.Variables.Set(v.Name, v.Default)
	}
	return c, nil
}

func decodeStrict(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode document")
	}
	return buf.Bytes(), nil
}
