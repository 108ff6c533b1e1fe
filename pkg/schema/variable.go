package schema

import (
	"encoding/json"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/value"
)

// Keys with special meaning in a variable definition object
const (
	KeyType         = "__type__"
	KeyPipeline     = "__processor__"
	KeyDefaultValue = "default_value"
)

// Variable is an analyzed variable definition
type Variable struct {
	Name string
	Type string
	// Pipeline is the declared pipeline, or the type's default when the
	// definition leaves it empty
	Pipeline string
	Default  value.Value
	// Properties holds the remaining keys (label, group, description...)
	// untouched
	Properties *Object
}

// ParseVariable analyzes one entry of a schema's variables object. The
// definition is either a scalar default value, whose Go type names the
// variable type, or an object with a __type__ key.
func ParseVariable(name string, definition interface{}) (Variable, error) {
	v := Variable{Name: name, Properties: NewObject()}

	switch def := definition.(type) {
	case *Object:
		typ, _ := def.values[KeyType].(string)
		if typ == "" {
			return v, errors.Newf(errors.ErrSchemaInvalid,
				"variable '%s': type not defined using '%s' field", name, KeyType).
				WithDetail("variable", name)
		}
		v.Type = typ

		if raw, ok := def.Get(KeyPipeline); ok && raw != nil {
			pipeline, ok := raw.(string)
			if !ok {
				return v, errors.Newf(errors.ErrSchemaInvalid,
					"variable '%s': '%s' must be a string", name, KeyPipeline).
					WithDetail("variable", name)
			}
			v.Pipeline = pipeline
		}

		if raw, ok := def.Get(KeyDefaultValue); ok {
			dv, err := value.FromAny(raw)
			if err != nil {
				return v, errors.Wrapf(err, errors.ErrSchemaInvalid,
					"variable '%s': unsupported default value", name).
					WithDetail("variable", name)
			}
			v.Default = dv
		}

		for _, key := range def.Keys() {
			switch key {
			case KeyType, KeyPipeline, KeyDefaultValue:
				continue
			}
			v.Properties.Set(key, def.values[key])
		}

	case bool, string, json.Number, float64, int, int64:
		dv, err := value.FromAny(def)
		if err != nil {
			return v, errors.Wrapf(err, errors.ErrSchemaInvalid, "variable '%s': unsupported default value", name)
		}
		v.Default = dv
		v.Type = dv.TypeName()

	default:
		return v, errors.Newf(errors.ErrSchemaInvalid,
			"variable '%s': unknown default value type %T", name, definition).
			WithDetail("variable", name)
	}

	if v.Pipeline == "" {
		v.Pipeline = DefaultPipeline(v.Type)
	}
	return v, nil
}

// Definition renders v back into its object form
func (v Variable) Definition() *Object {
	def := NewObject()
	def.Set(KeyType, v.Type)
	def.Set(KeyPipeline, v.Pipeline)
	def.Set(KeyDefaultValue, v.Default)
	for _, key := range v.Properties.Keys() {
		prop, _ := v.Properties.Get(key)
		def.Set(key, prop)
	}
	return def
}

// Label returns the "label" property, falling back to the name
func (v Variable) Label() string {
	raw, _ := v.Properties.Get("label")
	if label, ok := raw.(string); ok && label != "" {
		return label
	}
	return v.Name
}
