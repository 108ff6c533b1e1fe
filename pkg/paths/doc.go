// Package paths provides the locations amake reads and writes.
//
// # Environment Variables
//
//   - AMAKE_CONFIG_DIR: Override the user config directory (default: $XDG_CONFIG_HOME/amake)
//   - AMAKE_STATE_DIR: Override the state directory holding the log file (default: $XDG_STATE_HOME/amake)
//
// # Usage
//
//	p, err := paths.New("")          // project directory = current directory
//	p.UserConfigFile()              // ~/.config/amake/config.toml
//	p.ProjectConfigFile()           // <project>/.amake.toml
//	p.Resolve("amake.schema.json")  // <project>/amake.schema.json
package paths
