package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// View is a shared, read-only position handle into a tree. It pairs a raw
// position with the borrow tag of the tree it was minted from.
//
// Views are immutable values: every traversal step consumes the current view
// and returns a new one, or returns the view unchanged together with a
// boundary error. Callers therefore always hold a usable view:
//
//	v, err := v.Descend(bintree.Left)
//	if err == bintree.ErrNoChild { … }
//
// A view observes nodes, it never owns them; releasing a view has no effect
// on the tree beyond settling the borrow account.
type View[T any] struct {
	node *Node[T]
	cell *borrowCell
}

// MutView is an exclusive, read-write position handle into a tree. At most
// one may be live per tree, with no shared views alongside it.
type MutView[T any] struct {
	node *Node[T]
	cell *borrowCell
}

// Climb moves the view to the parent of its current position. At the root —
// where no parent exists — the view is returned unchanged together with
// ErrAtRoot. This is an expected boundary for callers to branch on, not a
// fault.
func (v View[T]) Climb() (View[T], error) {
	assert(v.node != nil, "view holds an invalid position")
	if v.node.parent == nil {
		return v, ErrAtRoot
	}
	v.node = v.node.parent
	return v, nil
}

// Descend moves the view to the child in the slot named by dir. If the slot
// is empty, the view is returned unchanged together with ErrNoChild.
func (v View[T]) Descend(dir Dir) (View[T], error) {
	assert(v.node != nil, "view holds an invalid position")
	child := v.node.children.Pick(dir)
	if child == nil {
		return v, ErrNoChild
	}
	v.node = child
	return v, nil
}

// Value returns the payload at the current position.
func (v View[T]) Value() T {
	assert(v.node != nil, "view holds an invalid position")
	return v.node.value
}

// Children returns both child slots at the current position. Shared views
// give no mutable access to the node itself.
func (v View[T]) Children() ChildPair[T] {
	assert(v.node != nil, "view holds an invalid position")
	return v.node.children
}

// Equal reports whether two views sit at the identical position.
func (v View[T]) Equal(w View[T]) bool {
	return v.node == w.node
}

// Release settles the view's entry in the borrow account. The view must not
// be used afterwards, and must be released exactly once.
func (v View[T]) Release() {
	v.cell.releaseShared()
}

// IntoMut converts the view into an exclusive view at the same position,
// after verifying that the position actually lies inside tree.
//
// The verification climbs the parent chain from the current position; if the
// chain terminates at a node identical to tree's root, the position is
// proven to belong to tree. The walk costs O(depth of the position) and is a
// pure verification pass: the returned exclusive view sits at the original
// position, not at the root.
//
// If the chain terminates elsewhere — the view was minted from a different
// tree, or the tree was restructured so that the position is no longer
// connected to its root — the shared view is returned unchanged together
// with ErrWrongTree, so the caller can recover and retry.
//
// Membership alone is not enough for mutable access: the upgrade also moves
// the borrow account and fails with ErrTreeBorrowed while other shared views
// of the tree are live. In that case too the shared view stays valid.
func (v View[T]) IntoMut(tree *Tree[T]) (MutView[T], error) {
	assert(v.node != nil, "view holds an invalid position")
	root := tree.Root()
	walk := v.node
	for walk != root {
		if walk.parent == nil {
			tracer().Debugf("view upgrade: parent chain ends at a foreign root")
			return MutView[T]{}, ErrWrongTree
		}
		walk = walk.parent
	}
	// Position proven to live under tree's root, so the view's borrow tag
	// is tree's borrow account.
	assert(v.cell == &tree.cell, "view membership proven for a tree with a foreign borrow tag")
	if err := v.cell.upgrade(); err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{node: v.node, cell: v.cell}, nil
}

// IntoMutUnchecked converts the view into an exclusive view at the same
// position without the membership walk of IntoMut, trusting the caller's
// external proof that the position lies inside tree.
//
// This is a deliberate escape hatch, not a default path: if the position
// does not belong to tree, subsequent mutations through the returned view
// corrupt a foreign tree. The borrow account still moves, so the upgrade
// fails with ErrTreeBorrowed while other shared views are live, and a view
// carrying a borrow tag of a different tree trips an assertion.
func (v View[T]) IntoMutUnchecked(tree *Tree[T]) (MutView[T], error) {
	assert(v.node != nil, "view holds an invalid position")
	assert(v.cell == &tree.cell, "view carries the borrow tag of a different tree")
	if err := v.cell.upgrade(); err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{node: v.node, cell: v.cell}, nil
}

// Climb moves the view to the parent of its current position. At the root
// the view is returned unchanged together with ErrAtRoot.
func (m MutView[T]) Climb() (MutView[T], error) {
	assert(m.node != nil, "view holds an invalid position")
	if m.node.parent == nil {
		return m, ErrAtRoot
	}
	m.node = m.node.parent
	return m, nil
}

// Descend moves the view to the child in the slot named by dir. If the slot
// is empty, the view is returned unchanged together with ErrNoChild.
func (m MutView[T]) Descend(dir Dir) (MutView[T], error) {
	assert(m.node != nil, "view holds an invalid position")
	child := m.node.children.Pick(dir)
	if child == nil {
		return m, ErrNoChild
	}
	m.node = child
	return m, nil
}

// Node returns the node at the current position for in-place mutation.
func (m MutView[T]) Node() *Node[T] {
	assert(m.node != nil, "view holds an invalid position")
	return m.node
}

// Value returns the payload at the current position.
func (m MutView[T]) Value() T {
	assert(m.node != nil, "view holds an invalid position")
	return m.node.value
}

// Release settles the view's entry in the borrow account. The view must not
// be used afterwards, and must be released exactly once.
func (m MutView[T]) Release() {
	m.cell.releaseExclusive()
}
