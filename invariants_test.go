package bintree

import (
	"errors"
	"testing"
)

func TestCheckFreshTree(t *testing.T) {
	tree := New("root")
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestCheckAfterMutations(t *testing.T) {
	tree := New(0)
	root := tree.Root()
	root.AddChild(Left, 1)
	root.AddChild(Right, 2)
	root.Child(Left).AddChild(Right, 3)
	root.AddChild(Left, 4) // displaces the subtree under 1
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestCheckStaleBackLink(t *testing.T) {
	tree := New(0)
	root := tree.Root()
	root.AddChild(Left, 1)
	// corrupt the back-link behind the API's back
	root.children.Left.parent = nil
	err := tree.Check()
	if !errors.Is(err, ErrInvalidStructure) {
		t.Fatalf("expected ErrInvalidStructure for a stale back-link, got %v", err)
	}
}

func TestCheckSharedNode(t *testing.T) {
	tree := New(0)
	root := tree.Root()
	root.AddChild(Left, 1)
	// alias the left child into the right slot behind the API's back
	root.children.Right = root.children.Left
	err := tree.Check()
	if !errors.Is(err, ErrInvalidStructure) {
		t.Fatalf("expected ErrInvalidStructure for a shared node, got %v", err)
	}
}

func TestCheckRootWithParent(t *testing.T) {
	tree := New(0)
	other := New(1)
	tree.root.parent = other.root
	err := tree.Check()
	if !errors.Is(err, ErrInvalidStructure) {
		t.Fatalf("expected ErrInvalidStructure for a parented root, got %v", err)
	}
}
