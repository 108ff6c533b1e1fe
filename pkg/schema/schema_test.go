package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/filesystem"
	"github.com/arthur-debert/amake/pkg/makeoptions"
	"github.com/arthur-debert/amake/pkg/value"
)

const sampleSchema = `{
  "version": "1.0.0",
  "author": "me",
  "created_at": "2025-01-01 00:00:00",
  "description": "",
  "website": "",
  "targets": ["all"],
  "default_target": "all",
  "variables": {
    "DEBUG": true,
    "NAME": "app",
    "RATIO": 1.5,
    "LEVEL": 3,
    "SRC": {"__type__": "dir_t", "default_value": "src\\main", "label": "Sources", "group": "Project"},
    "INC": {"__type__": "dirs_t", "__processor__": "prefix_each '-I' | join", "default_value": ["a", "b"]},
    "FLAGS": {"__type__": "str", "__processor__": "", "default_value": " -O2 "}
  }
}`

func TestParseSchema(t *testing.T) {
	s, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	assert.Equal(t, "me", s.Author)
	assert.Equal(t, []string{"all"}, s.Targets)
	assert.Equal(t, []string{"DEBUG", "NAME", "RATIO", "LEVEL", "SRC", "INC", "FLAGS"}, s.Variables.Keys())

	vars, err := s.ListVariables()
	require.NoError(t, err)
	require.Len(t, vars, 7)

	tests := []struct {
		name     string
		typ      string
		pipeline string
		def      value.Value
	}{
		{"DEBUG", "bool", "to_int", value.Bool(true)},
		{"NAME", "str", "", value.String("app")},
		{"RATIO", "float", "", value.Float(1.5)},
		{"LEVEL", "int", "", value.Int(3)},
		{"SRC", "dir_t", "posixpath", value.String(`src\main`)},
		{"INC", "dirs_t", "prefix_each '-I' | join", value.Strings("a", "b")},
		{"FLAGS", "str", "", value.String(" -O2 ")},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := vars[i]
			assert.Equal(t, tt.name, v.Name)
			assert.Equal(t, tt.typ, v.Type)
			assert.Equal(t, tt.pipeline, v.Pipeline)
			assert.True(t, tt.def.Equal(v.Default), "default %s", v.Default.Repr())
			assert.Equal(t, tt.def.Kind(), v.Default.Kind())
			assert.Equal(t, tt.pipeline, s.PipelineOf(tt.name))
		})
	}

	src, err := s.Variable("SRC")
	require.NoError(t, err)
	assert.Equal(t, "Sources", src.Label())
	assert.Equal(t, []string{"label", "group"}, src.Properties.Keys())
	assert.Equal(t, "NAME", vars[1].Label())

	_, err = s.Variable("MISSING")
	assert.True(t, errors.IsErrorCode(err, errors.ErrVariableNotFound))
	assert.Equal(t, "", s.PipelineOf("MISSING"))
}

func TestParseSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"version": `},
		{"unknown field", `{"colour": "red"}`},
		{"missing type", `{"variables": {"X": {"default_value": 1}}}`},
		{"bad processor", `{"variables": {"X": {"__type__": "str", "__processor__": 3}}}`},
		{"list shorthand", `{"variables": {"X": [1, 2]}}`},
		{"object default", `{"variables": {"X": {"__type__": "str", "default_value": {"a": 1}}}}`},
		{"reserved name", `{"variables": {"_jobs": 2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, errors.ErrSchemaInvalid, errors.GetErrorCode(err))
		})
	}
}

func TestDefaultPipeline(t *testing.T) {
	assert.Equal(t, "posixpath", DefaultPipeline("file_t"))
	assert.Equal(t, "to_int", DefaultPipeline("bool_t"))
	assert.Equal(t, "no_empty | join | strip", DefaultPipeline("str_list"))
	assert.Equal(t, "strip_each | no_empty | posixpath_each | join", DefaultPipeline("paths_t"))
	assert.Equal(t, "", DefaultPipeline("text_t"))
}

func TestSchemaRoundTrip(t *testing.T) {
	s, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	data, err := s.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"variables\": {\n    \"DEBUG\": true,")

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s.Variables.Keys(), again.Variables.Keys())

	vars, err := again.ListVariables()
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, vars[2].Default.Kind())
}

func TestTemplates(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, []string{"classic", "default"}, Templates())

	blank, err := FromTemplate("default", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04 05:06:07", blank.CreatedAt)
	assert.Equal(t, 0, blank.Variables.Len())

	classic, err := FromTemplate("classic", now)
	require.NoError(t, err)
	assert.Equal(t, "all", classic.DefaultTarget)
	require.NoError(t, classic.Validate())

	keys := classic.Variables.Keys()
	assert.Equal(t, "BINARY", keys[0])
	assert.Equal(t, "LIBS", keys[len(keys)-1])

	cc, err := classic.Variable("CC")
	require.NoError(t, err)
	assert.Equal(t, "posixpath", cc.Pipeline)
	assert.Equal(t, "The C compiler to use", func() string {
		d, _ := cc.Properties.Get("description")
		return d.(string)
	}())

	libs, err := classic.Variable("LIBS")
	require.NoError(t, err)
	assert.Equal(t, "['m', 'pthread', 'dl']", libs.Default.Repr())

	_, err = FromTemplate("fancy", now)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
}

func TestConfigurationFromSchema(t *testing.T) {
	s, err := FromTemplate("classic", time.Now())
	require.NoError(t, err)

	c, err := ConfigurationFromSchema(s)
	require.NoError(t, err)
	assert.Equal(t, "all", c.Target)

	var optionNames []string
	for _, opt := range makeoptions.All() {
		optionNames = append(optionNames, opt.Name)
	}
	assert.Equal(t, optionNames, c.Options.Keys())
	assert.Equal(t, s.Variables.Keys(), c.Variables.Keys())

	jobs, ok, err := c.Option(makeoptions.Jobs)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), jobs.IntValue())

	data, err := c.Encode()
	require.NoError(t, err)
	back, err := ParseConfiguration(data)
	require.NoError(t, err)

	inc, ok, err := back.VariableValue("INCDIR")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "['include/']", inc.Repr())

	_, ok, err = back.VariableValue("NOPE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseConfiguration(t *testing.T) {
	c, err := ParseConfiguration([]byte(`{"target": "x", "options": {"_jobs": 2, "_make_bin": "gmake"}, "variables": null}`))
	require.NoError(t, err)
	assert.Equal(t, "x", c.Target)
	assert.Equal(t, []string{"_jobs", "_make_bin"}, c.Options.Keys())
	assert.Equal(t, 0, c.Variables.Len())

	c, err = ParseConfiguration([]byte(`{"options": {"X": {"nested": 1}}}`))
	require.NoError(t, err)
	_, _, err = c.Option("X")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	_, err = ParseConfiguration([]byte(`{"targets": []}`))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestFiles(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/proj", 0755))

	_, err := Locate(fsys, "/proj", "", []string{DefaultSchemaFile}, errors.ErrSchemaNotFound)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemaNotFound))

	s, err := FromTemplate("classic", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(fsys, "/proj/amake.schema.json"))

	path, err := Locate(fsys, "/proj", "", []string{"other.json", DefaultSchemaFile}, errors.ErrSchemaNotFound)
	require.NoError(t, err)
	assert.Equal(t, "/proj/amake.schema.json", path)

	path, err = Locate(fsys, "/proj", "amake.schema.json", nil, errors.ErrSchemaNotFound)
	require.NoError(t, err)
	assert.Equal(t, "/proj/amake.schema.json", path)

	_, err = Locate(fsys, "/proj", "missing.json", nil, errors.ErrConfigNotFound)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))

	loaded, err := Load(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, s.Variables.Keys(), loaded.Variables.Keys())

	_, err = Load(fsys, "/proj/nope.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemaNotFound))

	require.NoError(t, fsys.WriteFile("/proj/broken.json", []byte("{"), 0644))
	_, err = Load(fsys, "/proj/broken.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemaInvalid))
	assert.Equal(t, "/proj/broken.json", errors.GetErrorDetails(err)["path"])

	c, err := ConfigurationFromSchema(loaded)
	require.NoError(t, err)
	require.NoError(t, c.Save(fsys, "/proj/sub/amake.config.json"))
	back, err := LoadConfiguration(fsys, "/proj/sub/amake.config.json")
	require.NoError(t, err)
	assert.Equal(t, c.Options.Keys(), back.Options.Keys())

	_, err = LoadConfiguration(fsys, "/proj/none.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
}
