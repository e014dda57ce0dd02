package navigation

// Node is a navigable view. Nodes are compared by identity, so
// implementations must be pointer types.
type Node interface {
	Title() string
	SetTitle(title string)
	Icon() string
	SetIcon(icon string)
}

// BasicNode is a plain Node holding a title and an icon reference
type BasicNode struct {
	title string
	icon  string
}

// NewNode creates a BasicNode with the given title and icon
func NewNode(title, icon string) *BasicNode {
	return &BasicNode{title: title, icon: icon}
}

func (n *BasicNode) Title() string {
	return n.title
}

func (n *BasicNode) SetTitle(title string) {
	n.title = title
}

func (n *BasicNode) Icon() string {
	return n.icon
}

func (n *BasicNode) SetIcon(icon string) {
	n.icon = icon
}

// titleOf returns the title of a node, tolerating nil
func titleOf(node Node) string {
	if node == nil {
		return ""
	}

	return node.Title()
}
