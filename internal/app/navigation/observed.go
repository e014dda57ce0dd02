package navigation

import (
	"navkit/internal/app/bus"
)

// observed decorates a Navigable and publishes a bus event for every state change
type observed struct {
	Navigable
	bus bus.Bus
}

// NewObserved wraps nav so that owners can subscribe to changes instead of polling
func NewObserved(nav Navigable, b bus.Bus) Navigable {
	return &observed{Navigable: nav, bus: b}
}

func (o *observed) SetHome(node Node) {
	o.Navigable.SetHome(node)
	o.publish(bus.EventHomeChanged, bus.HomeChanged{Title: titleOf(node)})
}

func (o *observed) AddContent(node Node) {
	o.InsertContent(len(o.Navigable.Content()), node)
}

func (o *observed) InsertContent(index int, node Node) {
	o.Navigable.InsertContent(index, node)

	content := o.Navigable.Content()
	o.publish(bus.EventContentAdded, bus.ContentAdded{
		Title: titleOf(node),
		Index: clamp(index, len(content)-1),
		Total: len(content),
	})
}

func (o *observed) AddAllContent(nodes []Node) {
	for _, node := range nodes {
		o.AddContent(node)
	}
}

func (o *observed) RemoveAllContent() {
	removed := 0
	for len(o.Navigable.Content()) > 0 {
		_ = o.RemoveContentAt(0)
		removed++
	}

	o.publish(bus.EventContentCleared, bus.ContentCleared{Removed: removed})
}

func (o *observed) RemoveContent(node Node) bool {
	before := o.Navigable.CurrentNode()
	index := indexIn(o.Navigable.Content(), node)

	if !o.Navigable.RemoveContent(node) {
		return false
	}

	o.publishMove(before)
	o.publish(bus.EventContentRemoved, bus.ContentRemoved{
		Title: titleOf(node),
		Index: index,
		Total: len(o.Navigable.Content()),
	})

	return true
}

func (o *observed) RemoveContentAt(index int) error {
	node, err := o.Navigable.ContentAt(index)
	if err != nil {
		return err
	}

	o.RemoveContent(node)

	return nil
}

func (o *observed) Nav(node Node) bool {
	before := o.Navigable.CurrentNode()
	ok := o.Navigable.Nav(node)
	o.publishMove(before)

	return ok
}

func (o *observed) NavIndex(index int) (bool, error) {
	before := o.Navigable.CurrentNode()
	ok, err := o.Navigable.NavIndex(index)
	o.publishMove(before)

	return ok, err
}

func (o *observed) NavHome() bool {
	before := o.Navigable.CurrentNode()
	ok := o.Navigable.NavHome()
	o.publishMove(before)

	return ok
}

func (o *observed) NavNext() error {
	before := o.Navigable.CurrentNode()
	err := o.Navigable.NavNext()
	o.publishMove(before)

	return err
}

func (o *observed) NavPrev() error {
	before := o.Navigable.CurrentNode()
	err := o.Navigable.NavPrev()
	o.publishMove(before)

	return err
}

func (o *observed) Exit() error {
	err := o.Navigable.Exit()
	o.bus.Publish(bus.Message{Type: bus.EventExit, Data: bus.Exit{Err: err}, Critical: true})

	return err
}

// publishMove publishes a navigation event when the current node changed identity
func (o *observed) publishMove(before Node) {
	after := o.Navigable.CurrentNode()
	if after == before {
		return
	}

	o.publish(bus.EventNavigated, bus.Navigated{
		From:  titleOf(before),
		To:    titleOf(after),
		Index: o.Navigable.CurrentNodeIndex(),
	})
}

func (o *observed) publish(t bus.MessageType, data interface{}) {
	o.bus.Publish(bus.Message{Type: t, Data: data})
}

func indexIn(nodes []Node, node Node) int {
	for i, n := range nodes {
		if n == node {
			return i
		}
	}

	return -1
}

func clamp(index, upper int) int {
	switch {
	case index < 0:
		return 0
	case index > upper:
		return upper
	default:
		return index
	}
}
