package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Dir names one of the two child slots of a node. Left refers to the first
// slot, Right to the second.
type Dir int

const (
	// Left addresses the first child slot.
	Left Dir = iota
	// Right addresses the second child slot.
	Right
)

func (d Dir) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}

// ChildPair holds both child slots of a node. An empty slot is nil.
type ChildPair[T any] struct {
	Left  *Node[T]
	Right *Node[T]
}

// Pick returns the slot named by dir.
func (p ChildPair[T]) Pick(dir Dir) *Node[T] {
	if dir == Left {
		return p.Left
	}
	return p.Right
}

// Node is a tree vertex holding a payload value, up to two owned children
// and maybe a parent. A node without a parent is the root of its tree.
//
// The parent field is a structural back-link only: it never implies
// ownership and is validated exclusively through the view protocol.
type Node[T any] struct {
	parent   *Node[T]
	children ChildPair[T]
	value    T
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the payload of the node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the payload of the node with v and returns the payload
// that was there previously.
func (n *Node[T]) SetValue(v T) T {
	old := n.value
	n.value = v
	return old
}

// Children returns both child slots of the node.
func (n *Node[T]) Children() ChildPair[T] {
	return n.children
}

// Child returns the child in the slot named by dir, or nil for an empty slot.
func (n *Node[T]) Child(dir Dir) *Node[T] {
	return n.children.Pick(dir)
}

// Parent returns the raw back-link of the node, nil at a root.
//
// The back-link by itself carries no guarantee that the referenced node is
// still attached to a live tree. It becomes trustworthy only when reached
// through a view, which proves reachability from a tree's root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// AddChild creates a fresh node owning value, links its back-link to n, and
// installs it in the slot named by dir. The node previously occupying the
// slot is detached — its back-link cleared, so it forms a valid standalone
// subtree — and returned, or nil if the slot was empty.
//
// This is the only structural mutation of the tree; there is no remove,
// rotate or rebalance operation. AddChild always succeeds.
func (n *Node[T]) AddChild(dir Dir, value T) *Node[T] {
	child := newNode(value)
	child.parent = n
	var prev *Node[T]
	if dir == Left {
		prev = n.children.Left
		n.children.Left = child
	} else {
		prev = n.children.Right
		n.children.Right = child
	}
	if prev != nil {
		prev.parent = nil
	}
	return prev
}
