package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree owns a graph of nodes, starting at a single root. A tree is never
// empty: it is created around a root payload and no operation removes the
// root. Dropping the tree releases the whole child-owning chain with it.
//
// Access to the nodes goes through views (see View and MutView), which the
// tree tracks in a borrow account so that many shared views or one exclusive
// view — never both — observe the tree at any time.
type Tree[T any] struct {
	root *Node[T]
	cell borrowCell
}

// New creates a tree consisting of a single root node carrying value.
func New[T any](value T) *Tree[T] {
	return &Tree[T]{root: newNode(value)}
}

// Root returns the root node for direct read access, bypassing the view
// protocol. Useful for whole-tree bulk inspection.
func (t *Tree[T]) Root() *Node[T] {
	assert(t.root != nil, "tree has no root node")
	return t.root
}

// RootMut returns the root node for direct mutation, bypassing the view
// protocol. It fails with ErrTreeBorrowed while any view of the tree is
// still live, which keeps direct bulk mutation from racing the views.
//
// The returned node must not be retained across subsequent view minting.
func (t *Tree[T]) RootMut() (*Node[T], error) {
	if !t.cell.isFree() {
		return nil, ErrTreeBorrowed
	}
	assert(t.root != nil, "tree has no root node")
	return t.root, nil
}

// View mints a shared, read-only view positioned at the root. Any number of
// shared views may be live at the same time. View fails with ErrTreeBorrowed
// while an exclusive view of the tree is live.
//
// The view must be released with Release when no longer needed.
func (t *Tree[T]) View() (View[T], error) {
	if err := t.cell.acquireShared(); err != nil {
		return View[T]{}, err
	}
	assert(t.root != nil, "tree has no root node")
	return View[T]{node: t.root, cell: &t.cell}, nil
}

// ViewMut mints an exclusive, read-write view positioned at the root. It
// fails with ErrTreeBorrowed while any other view of the tree is live.
//
// The view must be released with Release when no longer needed.
func (t *Tree[T]) ViewMut() (MutView[T], error) {
	if err := t.cell.acquireExclusive(); err != nil {
		return MutView[T]{}, err
	}
	assert(t.root != nil, "tree has no root node")
	return MutView[T]{node: t.root, cell: &t.cell}, nil
}

// Height returns the number of nodes on the longest root-to-leaf chain.
// A single-node tree has height 1.
func (t *Tree[T]) Height() int {
	return nodeHeight(t.root)
}

// Size returns the total number of nodes in the tree.
func (t *Tree[T]) Size() int {
	return nodeCount(t.root)
}

func nodeHeight[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	l := nodeHeight(n.children.Left)
	r := nodeHeight(n.children.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func nodeCount[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + nodeCount(n.children.Left) + nodeCount(n.children.Right)
}
