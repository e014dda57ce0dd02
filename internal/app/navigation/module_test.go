package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"navkit/internal/config"
	"navkit/internal/config/logger"
)

func Test_NewFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Navigation.Home = config.Node{Title: "Start", Icon: "start.png"}
	cfg.Navigation.Content = []config.Node{{Title: "Inbox"}, {Title: "Feed", Icon: "feed.png"}}

	calls := 0
	hook := ShutdownHook(func() error {
		calls++
		return nil
	})

	c := NewFromConfig(cfg, hook, logger.NewNop())

	assert.Equal(t, "Start", c.Home().Title())
	assert.Equal(t, "start.png", c.Home().Icon())
	assert.Equal(t, []string{"Inbox", "Feed"}, titles(c.Content()))
	assert.Same(t, c.Home(), c.CurrentNode())
	assert.False(t, c.NavHome())

	assert.NoError(t, c.Exit())
	assert.Equal(t, 1, calls)
}

func Test_NewFromConfig_IncludeHome(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Navigation.Content = []config.Node{{Title: "Inbox"}}
	cfg.Navigation.IncludeHome = true

	c := NewFromConfig(cfg, nil, logger.NewNop())

	assert.Equal(t, []string{config.DefaultHomeTitle, "Inbox"}, titles(c.Content()))
	assert.Equal(t, 0, c.CurrentNodeIndex())
	assert.NoError(t, c.NavNext())
	assert.True(t, c.NavHome())
	assert.Equal(t, 0, c.CurrentNodeIndex())
}

func Test_parseHomePolicy(t *testing.T) {
	tests := []struct {
		policy   string
		expected HomePolicy
	}{
		{policy: config.HomePolicyStrict, expected: HomePolicyStrict},
		{policy: config.HomePolicyImplicit, expected: HomePolicyImplicit},
		{policy: "", expected: HomePolicyStrict},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseHomePolicy(tt.policy))
		})
	}
}
