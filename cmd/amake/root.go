// Package amake wires amake's commands into a cobra command tree.
package amake

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/amake/internal/version"
	"github.com/arthur-debert/amake/pkg/commands"
	"github.com/arthur-debert/amake/pkg/config"
	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/filesystem"
	"github.com/arthur-debert/amake/pkg/logging"
	"github.com/arthur-debert/amake/pkg/paths"
	"github.com/arthur-debert/amake/pkg/ui"
)

// globals holds the persistent flags shared by every command
type globals struct {
	verbosity int
	directory string
	format    string
	sets      []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "amake",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.ErrOrStderr() == os.Stderr {
				logging.SetupLogger(g.verbosity)
			} else {
				logging.SetupLoggerWithOutput(g.verbosity, cmd.ErrOrStderr())
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.directory, "directory", "C", "", MsgFlagDirectory)
	rootCmd.PersistentFlags().StringVarP(&g.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringArrayVar(&g.sets, "set", nil, MsgFlagSet)

	rootCmd.AddGroup(&cobra.Group{ID: "project", Title: MsgGroupProject})
	rootCmd.AddGroup(&cobra.Group{ID: "pipeline", Title: MsgGroupPipeline})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd(g))
	rootCmd.AddCommand(newInitConfigCmd(g))
	rootCmd.AddCommand(newProcessCmd(g))
	rootCmd.AddCommand(newShowCmd(g))
	rootCmd.AddCommand(newGenerateCmd(g))
	rootCmd.AddCommand(newEvalCmd(g))
	rootCmd.AddCommand(newFunctionsCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// overrides turns --set flags into dotted config keys
func (g *globals) overrides() (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(g.sets))
	for _, set := range g.sets {
		key, val, ok := strings.Cut(set, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrInvalidSet, set)
		}
		out[key] = val
	}
	return out, nil
}

// environment resolves the project directory and loads the configuration
func (g *globals) environment() (paths.Paths, *config.Config, error) {
	p, err := paths.New(g.directory)
	if err != nil {
		return nil, nil, err
	}
	overrides, err := g.overrides()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(config.LoadOptions{
		UserFile:    p.UserConfigFile(),
		ProjectFile: p.ProjectConfigFile(),
		Overrides:   overrides,
	})
	if err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}

// project builds the commands.Project for the optional [schema] [config]
// positional arguments
func (g *globals) project(args []string) (commands.Project, *config.Config, error) {
	p, cfg, err := g.environment()
	if err != nil {
		return commands.Project{}, nil, err
	}
	project := commands.Project{
		FS:       filesystem.NewOS(),
		Dir:      p.ProjectDir(),
		Settings: cfg,
	}
	if len(args) > 0 {
		project.SchemaFile = args[0]
	}
	if len(args) > 1 {
		project.ConfigFile = args[1]
	}
	return project, cfg, nil
}

// renderer picks the output format: --format, then output.format
func (g *globals) renderer(cmd *cobra.Command, cfg *config.Config) (ui.Renderer, error) {
	name := g.format
	if name == "" && cfg != nil {
		name = cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// render writes result with the selected renderer
func (g *globals) render(cmd *cobra.Command, cfg *config.Config, result interface{}) error {
	r, err := g.renderer(cmd, cfg)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}
