package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navkit/internal/app/errors"
	"navkit/internal/app/navigation"
)

func Test_resolve(t *testing.T) {
	home := navigation.NewNode("Home", "")
	inbox := navigation.NewNode("Inbox", "")
	settings := navigation.NewNode("Settings", "")
	nav := navigation.New(home, navigation.WithContent([]navigation.Node{inbox, settings}))

	tests := []struct {
		name     string
		step     Step
		expected navigation.Node
		err      error
	}{
		{name: "Exact title", step: Step{Target: "Settings"}, expected: settings},
		{name: "Home by title", step: Step{Target: "Home"}, expected: home},
		{name: "Glob", step: Step{Match: "Set*"}, expected: settings},
		{name: "Glob picks first in content order", step: Step{Match: "*"}, expected: inbox},
		{name: "Target falls back to match", step: Step{Target: "Archive", Match: "In?ox"}, expected: inbox},
		{name: "Unknown title", step: Step{Target: "Archive"}, err: errors.ErrNodeNotFound},
		{name: "No glob match", step: Step{Match: "Z*"}, err: errors.ErrNodeNotFound},
		{name: "Invalid glob", step: Step{Match: "[a-"}, err: errors.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := resolve(nav, tt.step)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, node)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, node)
		})
	}
}

func Test_resolve_DuplicateTitlesUseFirst(t *testing.T) {
	first := navigation.NewNode("Tab", "")
	second := navigation.NewNode("Tab", "")
	nav := navigation.New(navigation.NewNode("Home", ""), navigation.WithContent([]navigation.Node{first, second}))

	node, err := resolve(nav, Step{Target: "Tab"})

	require.NoError(t, err)
	assert.Same(t, first, node)
}
