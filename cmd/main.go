package main

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"navkit/internal/app"
	"navkit/internal/app/cli"
	"navkit/internal/config"
	"navkit/internal/config/logger"
)

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:]))
}

// runApp parses arguments, loads configuration and runs the fx application
func runApp(args []string) int {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application := createApp(cfg, opts)
	if err := application.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application.Run()

	return 0
}

// loadConfig loads the configuration file named by opts and applies flag overrides.
// init writes the file, so it starts from defaults instead.
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.Type != cli.CommandInit {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	return cfg, nil
}

// createApp creates the FX application with the given config and options
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
