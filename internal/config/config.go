package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"navkit/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	Navigation Navigation `yaml:"navigation" mapstructure:"navigation"`
	Events     struct {
		Buffer int `yaml:"buffer" mapstructure:"buffer"`
	} `yaml:"events" mapstructure:"events"`
}

// Navigation describes the initial navigation tree
type Navigation struct {
	Home        Node   `yaml:"home" mapstructure:"home"`
	Content     []Node `yaml:"content" mapstructure:"content"`
	HomePolicy  string `yaml:"home_policy" mapstructure:"home_policy"`
	IncludeHome bool   `yaml:"include_home" mapstructure:"include_home"`
}

// Node describes a single view by its display attributes
type Node struct {
	Title string `yaml:"title" mapstructure:"title"`
	Icon  string `yaml:"icon" mapstructure:"icon"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Navigation.Home = Node{Title: DefaultHomeTitle}
	cfg.Navigation.Content = []Node{}
	cfg.Navigation.HomePolicy = HomePolicyStrict

	cfg.Events.Buffer = EventsBufferSize

	return cfg
}

// Load reads the configuration file at path, falling back to defaults when it does not exist
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFile
	}

	loadEnvFile(EnvFile)

	cfg := DefaultConfig()

	v := newViper(cfg)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a yaml viper instance with NAVKIT_ environment overrides.
// Scalar defaults are registered so the environment binds even without a file.
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("navigation.home.title", defaults.Navigation.Home.Title)
	v.SetDefault("navigation.home.icon", defaults.Navigation.Home.Icon)
	v.SetDefault("navigation.home_policy", defaults.Navigation.HomePolicy)
	v.SetDefault("navigation.include_home", defaults.Navigation.IncludeHome)
	v.SetDefault("events.buffer", defaults.Events.Buffer)

	return v
}

// loadEnvFile loads variables from an env file without overriding the environment
func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}

	_ = godotenv.Load(path)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateNavigation(); err != nil {
		return err
	}

	if c.Events.Buffer <= 0 {
		return errors.ErrInvalidEventsBuffer
	}

	return nil
}

// validateNavigation validates the navigation tree
func (c *Config) validateNavigation() error {
	nav := c.Navigation

	if nav.Home.Title == "" {
		return errors.ErrHomeTitleRequired
	}

	for i, node := range nav.Content {
		if node.Title == "" {
			return fmt.Errorf("content %d: %w", i, errors.ErrContentTitleRequired)
		}
	}

	switch nav.HomePolicy {
	case HomePolicyStrict, HomePolicyImplicit:
		return nil
	default:
		return fmt.Errorf("%w: '%s' (must be '%s' or '%s')", errors.ErrInvalidHomePolicy, nav.HomePolicy, HomePolicyStrict, HomePolicyImplicit)
	}
}

// normalize trims titles and lowercases the home policy
func (c *Config) normalize() {
	c.Navigation.Home.Title = strings.TrimSpace(c.Navigation.Home.Title)

	for i := range c.Navigation.Content {
		c.Navigation.Content[i].Title = strings.TrimSpace(c.Navigation.Content[i].Title)
	}

	c.Navigation.HomePolicy = strings.ToLower(strings.TrimSpace(c.Navigation.HomePolicy))
	if c.Navigation.HomePolicy == "" {
		c.Navigation.HomePolicy = HomePolicyStrict
	}
}
