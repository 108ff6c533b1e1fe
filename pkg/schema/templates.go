package schema

import (
	"sort"
	"time"

	"github.com/arthur-debert/amake/pkg/errors"
)

// TimeFormat is the layout of a schema's created_at field
const TimeFormat = "2006-01-02 15:04:05"

type variableTemplate struct {
	name, typ, pipeline, label, group, description string
	defaultValue                                   interface{}
}

var classicVariables = []variableTemplate{
	{"BINARY", "str", "", "Binary Name", "Project", "", "myapp"},
	{"SRCDIR", "dir_t", "", "Source Directory", "Project", "", "src/"},
	{"BUILDDIR", "dir_t", "", "Build Directory", "Project", "", "build/"},
	{"OBJDIR", "dir_t", "", "Object Directory", "Project", "", "build/objs"},
	{"BINDIR", "dir_t", "", "Binary Directory", "Project", "", "build/bin"},
	{"INSTALLDIR", "dir_t", "", "Install Directory", "Project", "", "/usr/local"},
	{"CC", "file_t", "", "C Compiler", "Toolchain", "The C compiler to use", "gcc"},
	{"CXX", "file_t", "", "C++ Compiler", "Toolchain", "The C++ compiler to use", "g++"},
	{"AR", "file_t", "", "Archiver", "Toolchain", "The archiver to use", "ar"},
	{"CFLAGS", "str", "strip", "C Compiler Flags", "Toolchain", "The C compiler flags to use", "-Wall -Wextra -Werror"},
	{"CXXFLAGS", "str", "strip", "C++ Compiler Flags", "Toolchain", "The C++ compiler flags to use", "-Wall -Wextra -Werror"},
	{"LDFLAGS", "str", "strip", "Linker Flags", "Toolchain", "The linker flags to use", ""},
	{"INCDIR", "dirs_t", "strip_each|no_empty|prefix_each '-I' |join", "Include Search Paths", "Includes", "", []interface{}{"include/"}},
	{"LIBDIR", "dirs_t", "strip_each|no_empty|prefix_each '-L' |join", "Library Search Paths", "Libraries", "", []interface{}{}},
	{"LIBS", "string_list_t", "strip_each|no_empty|prefix_each '-l' |join", "Libraries", "Libraries", "", []interface{}{"m", "pthread", "dl"}},
}

var templates = map[string]func(time.Time) *Schema{
	"default": func(now time.Time) *Schema {
		s := New()
		s.Author = "amake"
		s.CreatedAt = now.Format(TimeFormat)
		s.Description = "a blank amake schema"
		return s
	},
	"classic": func(now time.Time) *Schema {
		s := New()
		s.Author = "amake"
		s.CreatedAt = now.Format(TimeFormat)
		s.Description = "a classic amake schema"
		s.Targets = []string{"all", "clean", "install"}
		s.DefaultTarget = "all"
		for _, tv := range classicVariables {
			def := NewObject()
			def.Set(KeyType, tv.typ)
			def.Set(KeyPipeline, tv.pipeline)
			def.Set("label", tv.label)
			def.Set(KeyDefaultValue, tv.defaultValue)
			def.Set("group", tv.group)
			if tv.description != "" {
				def.Set("description", tv.description)
			}
			s.Variables.Set(tv.name, def)
		}
		return s
	},
}

// DefaultTemplate is used by init when no template is named
const DefaultTemplate = "classic"

// Templates lists the template names
func Templates() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromTemplate builds a new schema from the named template
func FromTemplate(name string, now time.Time) (*Schema, error) {
	build, ok := templates[name]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidArgument, "unknown schema template '%s'", name).
			WithDetail("template", name).
			WithDetail("available", Templates())
	}
	return build(now), nil
}
