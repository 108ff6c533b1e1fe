package amake

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/amake/pkg/errors"
)

type cli struct {
	t   *testing.T
	dir string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("AMAKE_CONFIG_DIR", t.TempDir())
	t.Setenv("AMAKE_STATE_DIR", t.TempDir())
	return &cli{t: t, dir: t.TempDir()}
}

func (c *cli) runWithInput(input string, args ...string) (string, error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"-C", c.dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (c *cli) run(args ...string) (string, error) {
	return c.runWithInput("", args...)
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "amake %v", args)
	return out
}

func TestNoCommand(t *testing.T) {
	_, err := newCLI(t).run()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestProjectWorkflow(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("init")
	assert.Contains(t, out, "Schema file initialized at")
	assert.FileExists(t, filepath.Join(c.dir, "amake.schema.json"))

	_, err := c.run("init")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileExists))

	out = c.mustRun("init-config")
	assert.Contains(t, out, "Config file initialized at")

	out = c.mustRun("show", "-f", "text")
	assert.True(t, strings.HasPrefix(out, "make all --jobs=1 -e BINARY=myapp"), out)

	out = c.mustRun("show", "--format", "json")
	var shown struct {
		Args    []string `json:"args"`
		Command string   `json:"command"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, []string{"make", "all", "--jobs=1"}, shown.Args[:3])

	out = c.mustRun("show", "--set", "make.default_bin=gmake", "--set", "output.format=text")
	assert.True(t, strings.HasPrefix(out, "make all"), "an explicit _make_bin wins over the default")

	out = c.mustRun("process", "--vars", "INCDIR,LIBS", "-f", "text")
	assert.Contains(t, out, "Variables       : INCDIR, LIBS")
	assert.Contains(t, out, "-lm -lpthread -ldl")

	out = c.mustRun("process", "-f", "yaml")
	assert.Contains(t, out, "all: true")
}

func TestGenerate(t *testing.T) {
	c := newCLI(t)
	c.mustRun("init")
	c.mustRun("init-config")

	out := c.mustRun("generate")
	assert.Contains(t, out, "Build script generated successfully")

	script := filepath.Join(c.dir, "build.sh")
	data, err := os.ReadFile(script)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#!/bin/sh\nmake all"))
	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	out, err = c.runWithInput("n\n", "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = c.runWithInput("yes\n", "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Build script generated successfully")

	out = c.mustRun("generate", "-y", "-o", "out/make.sh")
	assert.Contains(t, out, "make.sh")
	assert.FileExists(t, filepath.Join(c.dir, "out", "make.sh"))
}

func TestMissingSchema(t *testing.T) {
	_, err := newCLI(t).run("show")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemaNotFound))
}

func TestEval(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("eval", "strip | upper", "'  hi  '")
	assert.Equal(t, "HI (type:str)\n", out)

	out = c.mustRun("eval", "--trace", "strip_each | join '+'", "[' a ', 'b']")
	assert.Contains(t, out, "(0) strip_each")
	assert.True(t, strings.HasSuffix(out, "a+b (type:str)\n"))

	out = c.mustRun("eval", "to_int", "'7'", "-f", "json")
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, float64(7), result["output"])
	assert.Equal(t, "int", result["type"])

	_, err := c.run("eval", "uppr", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStageNotFound))
	assert.Contains(t, err.Error(), "did you mean 'upper'?")

	_, err = c.run("eval", "prefix -I", "x", "--strict")
	assert.Error(t, err)
}

func TestFunctions(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("functions", "--filter", "shlex", "-f", "json")
	var listed struct {
		Functions []struct {
			Name string `json:"name"`
		} `json:"functions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.NotEmpty(t, listed.Functions)
	for _, fn := range listed.Functions {
		assert.Contains(t, fn.Name, "shlex")
	}

	out = c.mustRun("functions", "--doc", "--filter", "prefix_each", "-f", "text")
	assert.Contains(t, out, "## prefix_each")
}

func TestConfig(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("config")
	assert.Contains(t, out, "default_bin")

	out = c.mustRun("config", "--set", "make.default_bin=gmake")
	assert.Contains(t, out, "gmake")

	require.NoError(t, os.WriteFile(filepath.Join(c.dir, ".amake.toml"), []byte("[pipeline]\nworkers = 9\n"), 0644))
	out = c.mustRun("config")
	assert.Contains(t, out, "workers = 9")

	out = c.mustRun("config", "--sample")
	assert.Contains(t, out, "# ")

	_, err := c.run("config", "--set", "novalue")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = c.run("config", "--set", "output.format=fancy")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestVersionAndCompletion(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("version"), "amake version dev")
	assert.Contains(t, c.mustRun("completion", "bash"), "bash completion")

	_, err := c.run("completion", "tcsh")
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	var prompt bytes.Buffer
	assert.True(t, confirm(strings.NewReader("Y\n"), &prompt, "ok? "))
	assert.Equal(t, "ok? ", prompt.String())
	assert.False(t, confirm(strings.NewReader(""), &prompt, "ok? "))
	assert.False(t, confirm(strings.NewReader("nope\n"), &prompt, "ok? "))
}
