// Package scene exposes the narrow host-model surface the conversion
// engine consumes: a live node hierarchy with attached components, value
// types, a layer table and persisted asset stores.
package scene

import (
	"reflect"
	"strings"
)

type (
	// Node represents a named node in the live hierarchy. Deactivated
	// nodes stay visible to lookup.
	Node struct {
		name       string
		active     bool
		parent     *Node
		children   []*Node
		components []Component
	}

	// Component represents behavior attached to a node. Concrete
	// components embed ComponentBase.
	Component interface {
		Node() *Node
		bind(node *Node)
	}

	// ComponentBase carries the owning node; embed it in concrete
	// components.
	ComponentBase struct {
		node *Node
	}

	// World holds the set of root nodes currently loaded, including
	// inactive ones.
	World struct {
		roots []*Node
	}
)

// NewNode creates an active node.
func NewNode(name string) *Node {
	return &Node{name: name, active: true}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Active returns the activation state.
func (n *Node) Active() bool {
	return n.active
}

// SetActive updates the activation state; lookup is unaffected.
func (n *Node) SetActive(flag bool) {
	n.active = flag
}

// Parent returns the parent node or nil for roots.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns direct children, including inactive ones.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns a direct child matched by exact name.
func (n *Node) Child(name string) *Node {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// Add reparents the supplied node under this one and returns it.
func (n *Node) Add(child *Node) *Node {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

func (n *Node) remove(child *Node) {
	for i, candidate := range n.children {
		if candidate == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Attach binds a component to this node and returns it.
func (n *Node) Attach(component Component) Component {
	component.bind(n)
	n.components = append(n.components, component)
	return component
}

// Components returns attached components.
func (n *Node) Components() []Component {
	return n.components
}

// Component returns the first attached component whose type matches the
// supplied type, or implements it when an interface type is requested.
func (n *Node) Component(rType reflect.Type) Component {
	for _, component := range n.components {
		componentType := reflect.TypeOf(component)
		if componentType == rType {
			return component
		}
		if rType.Kind() == reflect.Interface && componentType.Implements(rType) {
			return component
		}
	}
	return nil
}

// ComponentNamed returns the attached component with the supplied type
// name.
func (n *Node) ComponentNamed(name string) Component {
	for _, component := range n.components {
		if ComponentName(component) == name {
			return component
		}
	}
	return nil
}

// Path returns the slash-joined hierarchy path from the root.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.name
	}
	var segments []string
	for node := n; node != nil; node = node.parent {
		segments = append(segments, node.name)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "/")
}

// Node returns the owning node.
func (b *ComponentBase) Node() *Node {
	return b.node
}

func (b *ComponentBase) bind(node *Node) {
	b.node = node
}

// ComponentName returns the component concrete type name.
func ComponentName(component Component) string {
	rType := reflect.TypeOf(component)
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return rType.Name()
}

// NewWorld creates a world with the supplied roots.
func NewWorld(roots ...*Node) *World {
	return &World{roots: roots}
}

// Add appends a root node.
func (w *World) Add(root *Node) *Node {
	w.roots = append(w.roots, root)
	return root
}

// Roots returns all loaded root nodes, including inactive ones.
func (w *World) Roots() []*Node {
	return w.roots
}

// Root returns a root matched by exact name, including inactive ones.
func (w *World) Root(name string) *Node {
	for _, root := range w.roots {
		if root.name == name {
			return root
		}
	}
	return nil
}
