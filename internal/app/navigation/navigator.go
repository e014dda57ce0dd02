//go:generate mockgen -source=navigator.go -destination=navigator_mock.go -package=navigation
package navigation

import (
	"fmt"

	"navkit/internal/app/errors"
	"navkit/internal/config/logger"
)

// HomePolicy decides whether Home can be navigated to when it is not part of the content
type HomePolicy int

const (
	// HomePolicyStrict only navigates home when Home is a member of the content
	HomePolicyStrict HomePolicy = iota
	// HomePolicyImplicit treats Home as always navigable
	HomePolicyImplicit
)

// Navigable tracks a home node, an ordered content list and the node currently displayed
type Navigable interface {
	// Home returns the home node
	Home() Node
	// Content returns a copy of the content nodes in navigation order
	Content() []Node
	// ContentAt returns the content node at index
	ContentAt(index int) (Node, error)
	// CurrentNode returns the node currently displayed
	CurrentNode() Node
	// CurrentNodeIndex returns the position of the current node in the content, or -1
	CurrentNodeIndex() int

	// SetHome replaces the home node
	SetHome(node Node)
	// AddContent appends a node
	AddContent(node Node)
	// InsertContent inserts a node at a clamped position
	InsertContent(index int, node Node)
	// AddAllContent appends nodes in order
	AddAllContent(nodes []Node)
	// RemoveAllContent removes every content node
	RemoveAllContent()
	// RemoveContent removes the first occurrence of node
	RemoveContent(node Node) bool
	// RemoveContentAt removes the node at index
	RemoveContentAt(index int) error

	// Nav makes node current when it is part of the content
	Nav(node Node) bool
	// NavIndex navigates to the content node at index, -1 meaning home
	NavIndex(index int) (bool, error)
	// NavHome navigates to the home node
	NavHome() bool
	// NavNext moves to the next content node, wrapping around
	NavNext() error
	// NavPrev moves to the previous content node, wrapping around
	NavPrev() error
	// Exit invokes the shutdown hook
	Exit() error
}

// ShutdownHook is called by Exit. The owner decides whether the process terminates.
type ShutdownHook func() error

// Option configures a Controller
type Option func(*Controller)

// WithContent sets the initial content. The slice is copied.
func WithContent(nodes []Node) Option {
	return func(c *Controller) {
		c.content = append(make([]Node, 0, len(nodes)), nodes...)
	}
}

// WithShutdownHook sets the hook invoked by Exit
func WithShutdownHook(hook ShutdownHook) Option {
	return func(c *Controller) {
		c.shutdown = hook
	}
}

// WithHomePolicy sets how navigation to Home is resolved
func WithHomePolicy(policy HomePolicy) Option {
	return func(c *Controller) {
		c.policy = policy
	}
}

// WithLogger sets the logger used to trace state changes
func WithLogger(log logger.Logger) Option {
	return func(c *Controller) {
		c.log = log.WithComponent("navigation")
	}
}

// Controller is the Navigable implementation.
// It is not safe for concurrent use; owners serialize access.
type Controller struct {
	home     Node
	content  []Node
	current  Node
	policy   HomePolicy
	shutdown ShutdownHook
	log      logger.Logger
}

// New creates a controller whose current node is home
func New(home Node, opts ...Option) *Controller {
	c := &Controller{
		home:    home,
		content: []Node{},
		current: home,
		log:     logger.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Controller) Home() Node {
	return c.home
}

func (c *Controller) Content() []Node {
	return append(make([]Node, 0, len(c.content)), c.content...)
}

func (c *Controller) ContentAt(index int) (Node, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}

	return c.content[index], nil
}

func (c *Controller) CurrentNode() Node {
	return c.current
}

func (c *Controller) CurrentNodeIndex() int {
	return c.indexOf(c.current)
}

func (c *Controller) SetHome(node Node) {
	c.home = node
	c.log.Debug().Msgf("Home set to '%s'", titleOf(node))
}

func (c *Controller) AddContent(node Node) {
	c.InsertContent(len(c.content), node)
}

func (c *Controller) InsertContent(index int, node Node) {
	switch {
	case index < 0:
		index = 0
	case index > len(c.content):
		index = len(c.content)
	}

	c.content = append(c.content, nil)
	copy(c.content[index+1:], c.content[index:])
	c.content[index] = node

	c.log.Debug().Msgf("Added '%s' at %d (%d nodes)", titleOf(node), index, len(c.content))
}

func (c *Controller) AddAllContent(nodes []Node) {
	for _, node := range nodes {
		c.AddContent(node)
	}
}

func (c *Controller) RemoveAllContent() {
	for len(c.content) > 0 {
		c.RemoveContent(c.content[0])
	}
}

// RemoveContent redirects the cursor home before removing the current node
func (c *Controller) RemoveContent(node Node) bool {
	index := c.indexOf(node)
	if index < 0 {
		return false
	}

	if node == c.current {
		c.NavHome()
	}

	c.content = append(c.content[:index], c.content[index+1:]...)

	c.log.Debug().Msgf("Removed '%s' from %d (%d nodes)", titleOf(node), index, len(c.content))

	return true
}

func (c *Controller) RemoveContentAt(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	c.RemoveContent(c.content[index])

	return nil
}

func (c *Controller) Nav(node Node) bool {
	if c.policy == HomePolicyImplicit && node == c.home {
		c.moveTo(c.home)
		return true
	}

	index := c.indexOf(node)
	if index < 0 {
		c.log.Debug().Msgf("Navigation to '%s' ignored: not in content", titleOf(node))
		return false
	}

	c.moveTo(c.content[index])

	return true
}

func (c *Controller) NavIndex(index int) (bool, error) {
	if index == -1 {
		return c.NavHome(), nil
	}

	if index < -1 || index >= len(c.content) {
		return false, fmt.Errorf("%w: navigation index %d, valid range -1..%d", errors.ErrIndexOutOfRange, index, len(c.content)-1)
	}

	return c.Nav(c.content[index]), nil
}

func (c *Controller) NavHome() bool {
	return c.Nav(c.home)
}

func (c *Controller) NavNext() error {
	return c.step(1)
}

func (c *Controller) NavPrev() error {
	return c.step(-1)
}

func (c *Controller) Exit() error {
	c.log.Debug().Msg("Exit requested")

	if c.shutdown == nil {
		return nil
	}

	return c.shutdown()
}

// step moves the cursor by delta positions with wrap-around, starting from -1 when off content
func (c *Controller) step(delta int) error {
	size := len(c.content)
	if size == 0 {
		return fmt.Errorf("%w: cannot step through empty content", errors.ErrInvalidState)
	}

	target := ((c.CurrentNodeIndex()+delta)%size + size) % size
	c.Nav(c.content[target])

	return nil
}

func (c *Controller) moveTo(node Node) {
	c.current = node
	c.log.Debug().Msgf("Current is '%s' (index %d)", titleOf(node), c.CurrentNodeIndex())
}

func (c *Controller) indexOf(node Node) int {
	for i, n := range c.content {
		if n == node {
			return i
		}
	}

	return -1
}

func (c *Controller) checkIndex(index int) error {
	if index < 0 || index >= len(c.content) {
		return fmt.Errorf("%w: index %d, length %d", errors.ErrIndexOutOfRange, index, len(c.content))
	}

	return nil
}
