// Package config loads amake's own settings: file names to look for, the
// default make binary, pipeline evaluation knobs and the output format.
//
// Settings are layered with koanf. Each layer overrides the previous one:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/amake/config.toml
//  3. the project file, .amake.toml in the project directory
//  4. AMAKE_* environment variables, with "__" separating sections
//  5. explicit overrides, usually from command-line flags
package config
