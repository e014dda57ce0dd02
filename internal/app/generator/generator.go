//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"navkit/internal/app/errors"
	"navkit/internal/config"
	"navkit/internal/config/logger"
)

const templatePath = "templates/navkit.yaml.tmpl"

//go:embed templates/navkit.yaml.tmpl
var templateFS embed.FS

// Options contains the values rendered into navkit.yaml
type Options struct {
	HomeTitle  string
	HomeIcon   string
	Content    []string
	HomePolicy string
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		HomeTitle:  config.DefaultHomeTitle,
		HomeIcon:   "home.png",
		Content:    []string{"Inbox", "Calendar", "Settings"},
		HomePolicy: config.HomePolicyStrict,
	}
}

// Generator defines the interface for generating navkit.yaml
type Generator interface {
	Generate(path string, opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator printing dry runs to stdout
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		out: os.Stdout,
		log: log,
	}
}

// Generate renders the template into path, or prints it when dryRun is set
func (g *generator) Generate(path string, opts Options, force bool, dryRun bool) error {
	if !dryRun && !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", errors.ErrConfigExists, path)
		}
	}

	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToRenderTemplate, err)
	}

	tmpl, err := template.New(config.ConfigFile).Parse(string(tmplContent))
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToRenderTemplate, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToRenderTemplate, err)
	}

	if dryRun {
		_, err := g.out.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	g.log.Info().Msgf("Generated %s", path)

	return nil
}
