package schema

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/filesystem"
	"github.com/arthur-debert/amake/pkg/logging"
)

// Default file names looked up in the working directory
const (
	DefaultSchemaFile = "amake.schema.json"
	DefaultConfigFile = "amake.config.json"
)

// Locate resolves a project document path. An explicit name is taken
// relative to dir and must exist; otherwise the first existing candidate
// wins. notFound is the error code used when nothing matches.
func Locate(fsys filesystem.FS, dir, explicit string, candidates []string, notFound errors.ErrorCode) (string, error) {
	logger := logging.GetLogger("schema.files")

	if explicit != "" {
		path := resolve(dir, explicit)
		if !filesystem.IsFile(fsys, path) {
			return "", errors.Newf(notFound, "file '%s' does not exist", filepath.ToSlash(path)).
				WithDetail("path", path)
		}
		return path, nil
	}

	logger.Debug().Str("dir", dir).Strs("candidates", candidates).Msg("Looking for default file")
	for _, name := range candidates {
		path := resolve(dir, name)
		if filesystem.IsFile(fsys, path) {
			logger.Debug().Str("path", path).Msg("Found default file")
			return path, nil
		}
	}
	return "", errors.Newf(notFound, "no default file found in '%s' (looked for %v)", filepath.ToSlash(dir), candidates).
		WithDetail("dir", dir)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Load reads and validates a schema file
func Load(fsys filesystem.FS, path string) (*Schema, error) {
	data, err := readFile(fsys, path, errors.ErrSchemaNotFound)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, addPath(err, path)
	}
	return s, nil
}

// LoadConfiguration reads a configuration file
func LoadConfiguration(fsys filesystem.FS, path string) (*Configuration, error) {
	data, err := readFile(fsys, path, errors.ErrConfigNotFound)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfiguration(data)
	if err != nil {
		return nil, addPath(err, path)
	}
	return c, nil
}

// Save writes the schema to path
func (s *Schema) Save(fsys filesystem.FS, path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	return writeFile(fsys, path, data)
}

// Save writes the configuration to path
func (c *Configuration) Save(fsys filesystem.FS, path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	return writeFile(fsys, path, data)
}

func readFile(fsys filesystem.FS, path string, notFound errors.ErrorCode) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, notFound, "file '%s' does not exist", filepath.ToSlash(path)).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read '%s'", filepath.ToSlash(path)).
			WithDetail("path", path)
	}
	return data, nil
}

func writeFile(fsys filesystem.FS, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory '%s'", filepath.ToSlash(dir)).
				WithDetail("path", path)
		}
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write '%s'", filepath.ToSlash(path)).
			WithDetail("path", path)
	}
	return nil
}

func addPath(err error, path string) error {
	if amakeErr, ok := err.(*errors.AmakeError); ok {
		return amakeErr.WithDetail("path", path)
	}
	return err
}
