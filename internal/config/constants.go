package config

// app constants
const (
	AppName        = "navkit"
	AppDescription = "navigation state for multi-view applications"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.1.0"
)

// config file constants
const (
	ConfigFile = "navkit.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "NAVKIT"
)

// navigation constants
const (
	HomePolicyStrict   = "strict"
	HomePolicyImplicit = "implicit"

	DefaultHomeTitle = "Home"
)

// events constants
const (
	EventsBufferSize = 64
)
