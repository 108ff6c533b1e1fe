package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/amake/pkg/errors"
)

func TestNew(t *testing.T) {
	project := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")

	p, err := New(project)
	require.NoError(t, err)

	assert.Equal(t, project, p.ProjectDir())
	assert.Equal(t, filepath.Join("/xdg/config", "amake"), p.ConfigDir())
	assert.Equal(t, filepath.Join("/xdg/config", "amake", "config.toml"), p.UserConfigFile())
	assert.Equal(t, filepath.Join("/xdg/state", "amake", "amake.log"), p.LogFilePath())
	assert.Equal(t, filepath.Join(project, ".amake.toml"), p.ProjectConfigFile())
	assert.Equal(t, filepath.Join(project, "amake.schema.json"), p.Resolve("amake.schema.json"))
	assert.Equal(t, "/abs/file.json", p.Resolve("/abs/file.json"))
}

func TestEnvironmentOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigDir, "~/cfg")
	t.Setenv(EnvStateDir, "/tmp/amake-state")

	p, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cfg"), p.ConfigDir())
	assert.Equal(t, "/tmp/amake-state", p.StateDir())
}

func TestNewDefaultsToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, wd, p.ProjectDir())
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandHome("~/x"))
	assert.Equal(t, "~bob/x", ExpandHome("~bob/x"))
	assert.Equal(t, "rel", ExpandHome("rel"))
	assert.Equal(t, "", ExpandHome(""))
}
