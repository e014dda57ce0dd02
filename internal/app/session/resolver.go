package session

import (
	"fmt"

	"github.com/gobwas/glob"

	"navkit/internal/app/errors"
	"navkit/internal/app/navigation"
)

// resolve finds the node a step refers to, searching content first and then home.
// An exact target title wins over a match pattern.
func resolve(nav navigation.Navigable, step Step) (navigation.Node, error) {
	candidates := append(nav.Content(), nav.Home())

	if step.Target != "" {
		for _, node := range candidates {
			if node != nil && node.Title() == step.Target {
				return node, nil
			}
		}

		if step.Match == "" {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrNodeNotFound, step.Target)
		}
	}

	g, err := glob.Compile(step.Match)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", errors.ErrInvalidPattern, step.Match, err)
	}

	for _, node := range candidates {
		if node != nil && g.Match(node.Title()) {
			return node, nil
		}
	}

	return nil, fmt.Errorf("%w: no title matches '%s'", errors.ErrNodeNotFound, step.Match)
}
