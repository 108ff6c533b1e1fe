package amake

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate make command lines from a schema and a configuration"
	MsgInitShort       = "Create a schema file from a template"
	MsgInitConfigShort = "Create a configuration file from a schema"
	MsgProcessShort    = "Run and trace the pipelines of schema variables"
	MsgShowShort       = "Print the make command for the project"
	MsgGenerateShort   = "Write the make command to a build script"
	MsgEvalShort       = "Run a pipeline on a value"
	MsgFunctionsShort  = "List the pipeline functions"
	MsgConfigShort     = "Print the effective amake configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgInitLong        = "Init writes a new schema file. The classic template declares the usual C/C++ build variables; the default template is blank."
	MsgInitConfigLong  = "Init-config writes a configuration holding the default value of every make option and schema variable."
	MsgShowLong        = "Show evaluates every option and variable and prints the resulting make command, quoted for a POSIX shell."
	MsgFunctionsLong   = "Functions lists every pipeline function with its parameters. Use --doc for a formatted reference."
	MsgConfigLong      = "Config prints the configuration amake runs with after layering the built-in defaults, the user file, the project .amake.toml, AMAKE_* environment variables and --set overrides."
	MsgCompletionLong  = "Generate a completion script for bash, zsh, fish or powershell and source it from your shell profile."
	MsgOverwritePrompt = "Output file '%s' already exists. Overwrite? (y[es]/n[o]) "
	MsgErrNoCommand    = "no command specified"
	MsgErrInvalidSet   = "invalid --set value '%s', expected key=value"
	MsgGroupProject    = "PROJECT:"
	MsgGroupPipeline   = "PIPELINES:"
	MsgGroupMisc       = "MISC:"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDirectory = "Run as if amake was started in `dir`"
	MsgFlagFormat    = "Output format: auto, term, text, json or yaml"
	MsgFlagSet       = "Override a configuration key, e.g. --set pipeline.workers=8"
	MsgFlagTemplate  = "Schema template: default or classic"
	MsgFlagForce     = "Overwrite an existing file"
	MsgFlagVars      = "Comma separated variables to process (default all)"
	MsgFlagOutput    = "Build script path (default from files.build_script)"
	MsgFlagYes       = "Overwrite an existing build script without asking"
	MsgFlagTrace     = "Print every stage"
	MsgFlagStrict    = "Reject arguments that are not valid literals"
	MsgFlagDoc       = "Render a markdown reference"
	MsgFlagFilter    = "Only list functions fuzzily matching `text`"
	MsgFlagSample    = "Print a commented sample configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/process-long.txt
	msgProcessLongRaw string
	MsgProcessLong    = strings.TrimSpace(msgProcessLongRaw)

	//go:embed msgs/process-example.txt
	msgProcessExampleRaw string
	MsgProcessExample    = strings.TrimRight(msgProcessExampleRaw, "\n")

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/eval-long.txt
	msgEvalLongRaw string
	MsgEvalLong    = strings.TrimSpace(msgEvalLongRaw)

	//go:embed msgs/eval-example.txt
	msgEvalExampleRaw string
	MsgEvalExample    = strings.TrimRight(msgEvalExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
