//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"navkit/internal/app/errors"
	"navkit/internal/app/generator"
	"navkit/internal/app/navigation"
	"navkit/internal/app/session"
	"navkit/internal/config"
	"navkit/internal/config/logger"
)

const (
	markOK     = "✓"
	markNoop   = "·"
	markFailed = "✗"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	opts   *Options
	cfg    *config.Config
	nav    navigation.Navigable
	runner session.Runner
	gen    generator.Generator
	log    logger.Logger
	out    io.Writer
	p      printer
}

// NewCLI creates a new cli instance writing to stdout
func NewCLI(
	opts *Options,
	cfg *config.Config,
	nav navigation.Navigable,
	runner session.Runner,
	gen generator.Generator,
	log logger.Logger,
) CLI {
	return &cli{
		opts:   opts,
		cfg:    cfg,
		nav:    nav,
		runner: runner,
		gen:    gen,
		log:    log,
		out:    os.Stdout,
		p:      printer{styled: term.IsTerminal(os.Stdout.Fd())},
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	switch c.opts.Type {
	case CommandRun:
		return c.handleRun(c.opts.Script)
	case CommandShow:
		return c.handleShow()
	case CommandInit:
		return c.handleInit()
	case CommandVersion:
		return c.handleVersion()
	case CommandHelp:
		return c.handleHelp()
	default:
		return c.handleUnknown()
	}
}

// handleRun replays a script file and prints a line per step
func (c *cli) handleRun(path string) (int, error) {
	c.log.Debug().Msgf("Running script: %s", path)

	script, err := session.LoadScript(path)
	if err != nil {
		c.log.Error().Err(err).Msgf("Failed to load script '%s'", path)
		c.printError(err)

		return 1, err
	}

	if c.opts.ContinueOnError {
		script.ContinueOnError = true
	}

	fmt.Fprintln(c.out, c.p.title())
	fmt.Fprintln(c.out, c.p.section("Steps"))

	result, err := c.runner.Run(context.Background(), script, session.ReporterFunc(c.printSnapshot))
	if result != nil {
		fmt.Fprintf(c.out, "\n%s %s (%d steps)\n", c.p.render(mutedText, "Session"), c.renderState(result.State), len(result.Snapshots))
	}

	if err != nil {
		c.log.Error().Err(err).Msgf("Script '%s' failed", path)
		c.printError(err)

		return 1, err
	}

	return 0, nil
}

// handleShow prints the navigation tree
func (c *cli) handleShow() (int, error) {
	c.log.Debug().Msg("Displaying navigation tree")

	home := c.nav.Home()
	current := c.nav.CurrentNode()

	fmt.Fprintln(c.out, c.p.title())
	fmt.Fprintln(c.out, c.p.section("Home"))
	fmt.Fprintf(c.out, "  %s\n", c.renderNode(home, home == current))

	fmt.Fprintln(c.out, c.p.section("Content"))

	content := c.nav.Content()
	if len(content) == 0 {
		fmt.Fprintf(c.out, "  %s\n", c.p.render(mutedText, "(empty)"))
	}

	for i, node := range content {
		fmt.Fprintf(c.out, "  %2d. %s\n", i, c.renderNode(node, node == current))
	}

	fmt.Fprintf(c.out, "\n%s %s\n", c.p.render(mutedText, "Home policy"), c.cfg.Navigation.HomePolicy)

	return 0, nil
}

// handleInit writes a configuration template to the configured path
func (c *cli) handleInit() (int, error) {
	path := c.opts.ConfigPath
	if path == "" {
		path = config.ConfigFile
	}

	if err := c.gen.Generate(path, generator.DefaultOptions(), c.opts.Force, c.opts.DryRun); err != nil {
		c.log.Error().Err(err).Msg("Failed to generate config")
		c.printError(err)

		return 1, err
	}

	if !c.opts.DryRun {
		fmt.Fprintf(c.out, "%s %s\n", c.p.render(okStyle, "Generated"), path)
	}

	return 0, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, c.p.title())

	return 0, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")

	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		"  "+c.p.render(commandName, "navkit show")+"                  Print the configured navigation tree",
		"  "+c.p.render(commandName, "navkit run <script>")+"          Replay a navigation script",
		"  "+c.p.render(commandName, "navkit init")+"                  Generate a navkit.yaml template",
		"  "+c.p.render(commandName, "navkit version")+"               Show version",
	)

	options := lipgloss.JoinVertical(
		lipgloss.Left,
		"  "+c.p.render(commandName, "-c, --config <path>")+"          Configuration file (default "+config.ConfigFile+")",
		"  "+c.p.render(commandName, "--log-level <level>")+"          Override the configured log level",
		"  "+c.p.render(commandName, "-k, --continue-on-error")+"      Keep running after a failed step",
	)

	fmt.Fprintln(c.out, lipgloss.JoinVertical(
		lipgloss.Left,
		c.p.title(),
		c.p.section("Usage:"),
		usage,
		c.p.section("Options:"),
		options,
	))

	return 0, nil
}

// handleUnknown handles unknown commands
func (c *cli) handleUnknown() (int, error) {
	c.log.Debug().Msg("Unknown command")
	c.printError(errors.ErrUnknownCommand)

	return 1, errors.ErrUnknownCommand
}

// printSnapshot prints a single step outcome followed by the resulting tree
func (c *cli) printSnapshot(s session.Snapshot) {
	mark := c.p.render(okStyle, markOK)

	switch {
	case s.Err != nil:
		mark = c.p.render(failStyle, markFailed)
	case !s.OK:
		mark = c.p.render(mutedText, markNoop)
	}

	fmt.Fprintf(c.out, "%3d %s %-22s %s\n", s.Step, mark, s.Description, c.renderTree(s))

	if s.Err != nil {
		fmt.Fprintf(c.out, "      %s\n", c.p.render(failStyle, s.Err.Error()))
	}
}

// renderTree renders content titles with the current node bracketed
func (c *cli) renderTree(s session.Snapshot) string {
	parts := make([]string, 0, len(s.Content))

	for i, title := range s.Content {
		if i == s.CurrentIndex {
			parts = append(parts, c.p.render(currentStyle, "["+title+"]"))
			continue
		}

		parts = append(parts, title)
	}

	tree := strings.Join(parts, " ")
	if s.CurrentIndex == -1 {
		tree += " " + c.p.render(mutedText, "(at "+s.Current+")")
	}

	return strings.TrimSpace(tree)
}

func (c *cli) renderNode(node navigation.Node, current bool) string {
	if node == nil {
		return c.p.render(mutedText, "(none)")
	}

	text := node.Title()
	if node.Icon() != "" {
		text += " " + c.p.render(mutedText, "("+node.Icon()+")")
	}

	if current {
		text = c.p.render(currentStyle, "→ ") + text
	}

	return text
}

func (c *cli) renderState(state string) string {
	switch state {
	case session.Failed:
		return c.p.render(failStyle, state)
	default:
		return c.p.render(okStyle, state)
	}
}

func (c *cli) printError(err error) {
	fmt.Fprintf(c.out, "%s %v\n", c.p.render(failStyle, "Error:"), err)
}
