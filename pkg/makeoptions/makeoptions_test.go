package makeoptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/amake/pkg/builtins"
	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/value"
)

func TestLookup(t *testing.T) {
	opt, err := Lookup(Jobs)
	require.NoError(t, err)
	assert.Equal(t, int64(1), opt.Default.IntValue())
	assert.True(t, opt.Rendered())

	opt, err = Lookup(MakeBin)
	require.NoError(t, err)
	assert.False(t, opt.Rendered())

	_, err = Lookup("_unknown")
	assert.True(t, errors.IsErrorCode(err, errors.ErrOptionNotFound))
}

func TestAllKeepsOrder(t *testing.T) {
	var names []string
	for _, opt := range All() {
		names = append(names, opt.Name)
	}
	assert.Equal(t, []string{
		MakeBin, Override, Debug, Directory, Makefile, IncludeDir,
		Jobs, AlwaysMake, IgnoreErrors, DryRun, Extras,
	}, names)
}

func TestConflicts(t *testing.T) {
	assert.Equal(t, []string{"_jobs"}, Conflicts([]string{"CC", "_jobs", "LIBS"}))
	assert.Empty(t, Conflicts([]string{"CC"}))
}

func TestPipelinesParse(t *testing.T) {
	exec := builtins.NewExecutor(pipeline.ExecutorOptions{StrictLiterals: true})
	for _, opt := range All() {
		_, err := exec.Parse(opt.Pipeline)
		assert.NoError(t, err, opt.Name)
	}
}

func TestRendering(t *testing.T) {
	exec := builtins.NewExecutor(pipeline.ExecutorOptions{})

	tests := []struct {
		option string
		input  value.Value
		want   value.Value
	}{
		{MakeBin, value.String(` C:\tools\make.exe `), value.String("C:/tools/make.exe")},
		{Override, value.Int(0), value.Bool(false)},
		{Debug, value.String("v"), value.String("--debug=v")},
		{Debug, value.String(" "), value.String("")},
		{Directory, value.String(`src\lib`), value.String("--directory=src/lib")},
		{Makefile, value.String(""), value.String("")},
		{IncludeDir, value.Strings("mk", "", `a\b`), value.Strings("-I", "mk", "-I", "a/b")},
		{Jobs, value.Int(4), value.String("--jobs=4")},
		{AlwaysMake, value.Bool(true), value.String("--always-make")},
		{IgnoreErrors, value.Bool(false), value.String("")},
		{DryRun, value.Bool(true), value.String("--dry-run")},
		{Extras, value.String(" -k  --trace 'a b' "), value.Strings("-k", "--trace", "a b")},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			opt, err := Lookup(tt.option)
			require.NoError(t, err)
			got, err := exec.Execute(opt.Pipeline, tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got.Repr())
		})
	}
}
