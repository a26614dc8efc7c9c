package bintree

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree := New("a")
	root := tree.Root()
	root.AddChild(Left, "b")
	root.AddChild(Right, "c")

	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("unexpected DOT preamble: %.40q", out)
	}
	for _, label := range []string{"a", "b", "c"} {
		if !strings.Contains(out, "label=\""+label+"\"") {
			t.Errorf("expected a node labeled %q in DOT output", label)
		}
	}
	if strings.Count(out, " -> ") != 2 {
		t.Errorf("expected 2 edges, output:\n%s", out)
	}
}

func TestTree2DotPlaceholdersAreDistinct(t *testing.T) {
	// two inner nodes, each with one empty slot
	tree := New("a")
	root := tree.Root()
	root.AddChild(Left, "b")
	root.Child(Left).AddChild(Right, "c")

	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	placeholders := regexp.MustCompile(`"(\d+)" \[label=""`).FindAllStringSubmatch(out, -1)
	if len(placeholders) != 2 {
		t.Fatalf("expected 2 placeholder circles, have %d:\n%s", len(placeholders), out)
	}
	if placeholders[0][1] == placeholders[1][1] {
		t.Errorf("placeholder circles share id %s and would merge:\n%s", placeholders[0][1], out)
	}
}

func TestTree2DotEmptySlots(t *testing.T) {
	tree := New(1)
	tree.Root().AddChild(Right, 2)

	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	// the empty left slot shows up as an unlabeled circle
	if !strings.Contains(out, "label=\"\"") {
		t.Errorf("expected a placeholder for the empty slot, output:\n%s", out)
	}
}
