package cli

import (
	"github.com/spf13/cobra"

	"navkit/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandShow CommandType = iota
	CommandRun
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type            CommandType
	Script          string
	ConfigPath      string
	LogLevel        string
	ContinueOnError bool
	Force           bool
	DryRun          bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:       CommandShow,
		ConfigPath: config.ConfigFile,
	}

	var showVersion bool

	root := buildRootCommand(result, &showVersion)
	root.AddCommand(
		buildRunCommand(result),
		buildShowCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if showVersion {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, showVersion *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: config.AppDescription,
		Long: `navkit keeps a home view, an ordered list of content views and a cursor
over them, and replays navigation scripts against that tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandShow
		},
	}

	cmd.PersistentFlags().StringVarP(&result.ConfigPath, "config", "c", config.ConfigFile, "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&result.LogLevel, "log-level", "", "Override the configured log level")
	cmd.Flags().BoolVarP(showVersion, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run <script>",
		Aliases: []string{"r"},
		Short:   "Replay a navigation script against the configured tree",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
			result.Script = args[0]
		},
	}

	cmd.Flags().BoolVarP(&result.ContinueOnError, "continue-on-error", "k", false, "Keep running after a failed step")

	return cmd
}

// buildShowCommand creates the show subcommand
func buildShowCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"s"},
		Short:   "Print the configured navigation tree",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandShow
		},
	}

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate a navkit.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
