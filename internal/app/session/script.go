package session

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"navkit/internal/app/errors"
)

// Operations understood by the runner
const (
	OpNav         = "nav"
	OpNavIndex    = "nav_index"
	OpHome        = "home"
	OpNext        = "next"
	OpPrev        = "prev"
	OpAdd         = "add"
	OpInsert      = "insert"
	OpRemove      = "remove"
	OpRemoveIndex = "remove_index"
	OpClear       = "clear"
	OpSetHome     = "set_home"
	OpExit        = "exit"
)

// Script is an ordered list of steps applied to a navigator
type Script struct {
	Steps           []Step `yaml:"steps"`
	ContinueOnError bool   `yaml:"continue_on_error"`
}

// Step is a single operation. Target and Match select an existing node,
// Title and Icon describe a new one.
type Step struct {
	Op     string `yaml:"op"`
	Target string `yaml:"target"`
	Match  string `yaml:"match"`
	Index  *int   `yaml:"index"`
	Title  string `yaml:"title"`
	Icon   string `yaml:"icon"`
}

// LoadScript reads and parses a script file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadScript, err)
	}

	return ParseScript(data)
}

// ParseScript parses and validates a YAML script
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseScript, err)
	}

	for i, step := range script.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", errors.ErrFailedToParseScript, i+1, err)
		}
	}

	return &script, nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpHome, OpNext, OpPrev, OpClear, OpExit:
		return nil
	case OpNav, OpRemove:
		if s.Target == "" && s.Match == "" {
			return errors.ErrMissingTarget
		}
	case OpNavIndex, OpRemoveIndex:
		if s.Index == nil {
			return errors.ErrMissingTarget
		}
	case OpAdd, OpInsert, OpSetHome:
		if s.Title == "" && s.Target == "" && s.Match == "" {
			return errors.ErrMissingTarget
		}

		if s.Op == OpInsert && s.Index == nil {
			return errors.ErrMissingTarget
		}
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrUnknownOperation, s.Op)
	}

	return nil
}

// String describes a step for reports and logs
func (s Step) String() string {
	switch {
	case s.Index != nil && s.Title != "":
		return fmt.Sprintf("%s %d %s", s.Op, *s.Index, s.Title)
	case s.Index != nil:
		return fmt.Sprintf("%s %d", s.Op, *s.Index)
	case s.Target != "":
		return fmt.Sprintf("%s %s", s.Op, s.Target)
	case s.Match != "":
		return fmt.Sprintf("%s ~%s", s.Op, s.Match)
	case s.Title != "":
		return fmt.Sprintf("%s %s", s.Op, s.Title)
	default:
		return s.Op
	}
}
