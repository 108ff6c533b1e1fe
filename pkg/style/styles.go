// Package style defines the visual styling of amake's terminal output.
//
// Styles are declared in styles.yaml with adaptive colors that adjust to
// light and dark terminals, and are looked up by semantic name:
//
//	style.Render("Stage", "prefix_each")
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Sheet maps semantic names to lipgloss styles
type Sheet struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

var defaultSheet = mustParse(defaultStyles)

func mustParse(data []byte) *Sheet {
	sheet, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("failed to load styles: %v", err))
	}
	return sheet
}

// Parse builds a sheet from YAML. Unknown color names leave the color unset.
func Parse(data []byte) (*Sheet, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	sheet := &Sheet{
		colors: make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
	}
	for name, def := range config.Colors {
		sheet.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range config.Styles {
		sheet.styles[name] = sheet.build(def)
	}
	return sheet, nil
}

// build constructs a lipgloss style from a style definition
func (s *Sheet) build(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := s.colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := s.colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style
}

// Get returns the named style, or an empty style
func (s *Sheet) Get(name string) lipgloss.Style {
	if style, ok := s.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether the sheet defines name
func (s *Sheet) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}

// GetStyle returns a style from the default sheet
func GetStyle(name string) lipgloss.Style {
	return defaultSheet.Get(name)
}

// Render applies a style from the default sheet
func Render(name, text string) string {
	return defaultSheet.Get(name).Render(text)
}
