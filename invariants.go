package bintree

import "fmt"

// ErrInvalidStructure signals a violated structural invariant, found by Check.
const ErrInvalidStructure = TreeError("tree structure is invalid")

// Check validates the structural invariants of the tree: a single root with
// a nil back-link, every child's back-link pointing at its owning node, and
// no node occupying more than one slot.
//
// This checker is intentionally strict and meant for tests; a tree mutated
// only through the safe API cannot fail it.
func (t *Tree[T]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: tree has no root node", ErrInvalidStructure)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent back-link", ErrInvalidStructure)
	}
	seen := make(map[*Node[T]]bool)
	return t.checkNode(t.root, seen)
}

func (t *Tree[T]) checkNode(n *Node[T], seen map[*Node[T]]bool) error {
	if seen[n] {
		return fmt.Errorf("%w: node occupies more than one slot", ErrInvalidStructure)
	}
	seen[n] = true
	for _, dir := range []Dir{Left, Right} {
		child := n.children.Pick(dir)
		if child == nil {
			continue
		}
		if child.parent != n {
			return fmt.Errorf("%w: child in slot %s has a stale back-link", ErrInvalidStructure, dir)
		}
		if err := t.checkNode(child, seen); err != nil {
			return err
		}
	}
	return nil
}
