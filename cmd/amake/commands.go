package amake

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/amake/internal/version"
	"github.com/arthur-debert/amake/pkg/commands"
	"github.com/arthur-debert/amake/pkg/config"
	"github.com/arthur-debert/amake/pkg/logging"
	"github.com/arthur-debert/amake/pkg/schema"
)

func newInitCmd(g *globals) *cobra.Command {
	var (
		template string
		force    bool
	)
	cmd := &cobra.Command{
		Use:     "init [schema]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "project",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, cfg, err := g.project(args)
			if err != nil {
				return err
			}
			result, err := commands.Init(commands.InitOptions{
				Project:  project,
				Template: template,
				Force:    force,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, result)
		},
	}
	cmd.Flags().StringVarP(&template, "template", "t", schema.DefaultTemplate, MsgFlagTemplate)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	_ = cmd.RegisterFlagCompletionFunc("template", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return schema.Templates(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newInitConfigCmd(g *globals) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "init-config [schema] [config]",
		Short:   MsgInitConfigShort,
		Long:    MsgInitConfigLong,
		GroupID: "project",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, cfg, err := g.project(args)
			if err != nil {
				return err
			}
			result, err := commands.InitConfig(commands.InitConfigOptions{Project: project, Force: force})
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, result)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newProcessCmd(g *globals) *cobra.Command {
	var vars []string
	cmd := &cobra.Command{
		Use:     "process [schema] [config]",
		Short:   MsgProcessShort,
		Long:    MsgProcessLong,
		Example: MsgProcessExample,
		GroupID: "project",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, cfg, err := g.project(args)
			if err != nil {
				return err
			}
			result, err := commands.Process(cmd.Context(), commands.ProcessOptions{
				Project:   project,
				Variables: vars,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, result)
		},
	}
	cmd.Flags().StringSliceVar(&vars, "vars", nil, MsgFlagVars)
	return cmd
}

func newShowCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "show [schema] [config]",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		GroupID: "project",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, cfg, err := g.project(args)
			if err != nil {
				return err
			}
			result, err := commands.Show(cmd.Context(), commands.ShowOptions{Project: project})
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, result)
		},
	}
}

func newGenerateCmd(g *globals) *cobra.Command {
	var (
		output string
		yes    bool
	)
	cmd := &cobra.Command{
		Use:     "generate [schema] [config]",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		GroupID: "project",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, cfg, err := g.project(args)
			if err != nil {
				return err
			}
			result, err := commands.Generate(cmd.Context(), commands.GenerateOptions{
				Project:   project,
				Output:    output,
				Overwrite: yes,
				Confirm: func(path string) bool {
					return confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf(MsgOverwritePrompt, path))
				},
			})
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, result)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

// confirm asks a yes/no question; anything but y or yes declines
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func newEvalCmd(g *globals) *cobra.Command {
	var (
		trace  bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:     "eval <pipeline> [value]",
		Short:   MsgEvalShort,
		Long:    MsgEvalLong,
		Example: MsgEvalExample,
		GroupID: "pipeline",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := g.environment()
			if err != nil {
				return err
			}
			opts := commands.EvalOptions{
				Pipeline:       args[0],
				Trace:          trace,
				StrictLiterals: strict || cfg.Pipeline.StrictLiterals,
			}
			if len(args) > 1 {
				opts.Input = args[1]
			}
			result, err := commands.Eval(opts)
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, result)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, MsgFlagTrace)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

func newFunctionsCmd(g *globals) *cobra.Command {
	var opts commands.FunctionsOptions
	cmd := &cobra.Command{
		Use:     "functions",
		Short:   MsgFunctionsShort,
		Long:    MsgFunctionsLong,
		GroupID: "pipeline",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := g.environment()
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, commands.Functions(opts))
		},
	}
	cmd.Flags().BoolVar(&opts.Doc, "doc", false, MsgFlagDoc)
	cmd.Flags().StringVar(&opts.Filter, "filter", "", MsgFlagFilter)
	return cmd
}

func newConfigCmd(g *globals) *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sample {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.SampleContent())
				return err
			}
			_, cfg, err := g.environment()
			if err != nil {
				return err
			}
			text, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, MsgFlagSample)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.completion")
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				logger.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
