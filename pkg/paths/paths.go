package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/amake/pkg/errors"
)

// Environment variable names
const (
	EnvConfigDir = "AMAKE_CONFIG_DIR"
	EnvStateDir  = "AMAKE_STATE_DIR"
	EnvHome      = "HOME"
)

// File and directory names
const (
	AppDirName        = "amake"
	UserConfigName    = "config.toml"
	ProjectConfigName = ".amake.toml"
	LogFileName       = "amake.log"
)

// Paths resolves the user and project locations
type Paths interface {
	ProjectDir() string
	ConfigDir() string
	StateDir() string
	UserConfigFile() string
	ProjectConfigFile() string
	LogFilePath() string
	Resolve(name string) string
}

type paths struct {
	projectDir string
	configDir  string
	stateDir   string
}

// New returns the paths for projectDir, the current directory when empty
func New(projectDir string) (Paths, error) {
	if projectDir == "" {
		projectDir = "."
	}
	abs, err := filepath.Abs(expandHome(projectDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project directory")
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrFileAccess, "project directory '%s' does not exist", abs).
			WithDetail("path", abs)
	}

	p := &paths{projectDir: abs}
	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs applies the environment overrides on top of the XDG defaults
func (p *paths) setupXDGDirs() {
	xdg.Reload()

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user is left alone
	return path
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func (p *paths) ProjectDir() string { return p.projectDir }

func (p *paths) ConfigDir() string { return p.configDir }

func (p *paths) StateDir() string { return p.stateDir }

func (p *paths) UserConfigFile() string {
	return filepath.Join(p.configDir, UserConfigName)
}

func (p *paths) ProjectConfigFile() string {
	return filepath.Join(p.projectDir, ProjectConfigName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// Resolve returns name joined to the project directory unless it is absolute
func (p *paths) Resolve(name string) string {
	name = expandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.projectDir, name)
}
