package errors

import (
	"errors"
)

// Navigation errors
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidState    = errors.New("invalid navigation state")
)

// Config errors
var (
	ErrFailedToReadConfig   = errors.New("failed to read config file")
	ErrFailedToParseConfig  = errors.New("failed to parse config file")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrHomeTitleRequired    = errors.New("navigation home title is required")
	ErrContentTitleRequired = errors.New("navigation content title is required")
	ErrInvalidHomePolicy    = errors.New("invalid home policy")
	ErrInvalidEventsBuffer  = errors.New("events buffer must be greater than 0")
)

// Generator errors
var (
	ErrConfigExists           = errors.New("config file already exists")
	ErrFailedToRenderTemplate = errors.New("failed to render config template")
	ErrFailedToWriteConfig    = errors.New("failed to write config file")
)

// Session errors
var (
	ErrFailedToReadScript  = errors.New("failed to read script file")
	ErrFailedToParseScript = errors.New("failed to parse script file")
	ErrUnknownOperation    = errors.New("unknown operation")
	ErrNodeNotFound        = errors.New("node not found")
	ErrMissingTarget       = errors.New("step requires a target, match or index")
	ErrInvalidPattern      = errors.New("invalid match pattern")
	ErrSessionStart        = errors.New("failed to start session")
	ErrStepFailed          = errors.New("step failed")
)

// CLI errors
var (
	ErrUnknownCommand = errors.New("unknown command")
)

var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)
