package treeprint

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"

	"github.com/npillmayer/bintree"
)

func TestPrintSmallTree(t *testing.T) {
	tree := bintree.New("root")
	n := tree.Root()
	n.AddChild(bintree.Left, "alpha")
	n.AddChild(bintree.Right, "beta")
	n.Child(bintree.Left).AddChild(bintree.Right, "gamma")

	var buf bytes.Buffer
	// an empty palette keeps the output free of escape sequences
	err := Print(tree, &buf, &Config{LineWidth: 65}, &Palette{})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"root",
		"  L alpha",
		"    R gamma",
		"  R beta",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, have %d:\n%s", len(want), len(lines), buf.String())
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, expected %q", i, lines[i], w)
		}
	}
}

func TestPrintClipsLongLabels(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	tree := bintree.New(strings.Repeat("x", 100))
	var buf bytes.Buffer
	if err := Print(tree, &buf, &Config{LineWidth: 10}, &Palette{}); err != nil {
		t.Fatal(err)
	}
	line := strings.TrimRight(buf.String(), "\n")
	if len(line) != 10 {
		t.Errorf("expected the label clipped to 10 positions, have %d", len(line))
	}
}

func TestPrintClipsOnGraphemeBoundaries(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	tree := bintree.New(strings.Repeat("ä", 20))
	var buf bytes.Buffer
	config := &Config{LineWidth: 11, Context: uax11.LatinContext}
	if err := Print(tree, &buf, config, &Palette{}); err != nil {
		t.Fatal(err)
	}
	line := strings.TrimRight(buf.String(), "\n")
	if !utf8.ValidString(line) {
		t.Fatalf("clipped label is not valid UTF-8: %q", line)
	}
	if n := utf8.RuneCountInString(line); n != 11 {
		t.Errorf("expected 11 character positions, have %d: %q", n, line)
	}
}

func TestPrintNilTree(t *testing.T) {
	if err := Print[int](nil, nil, nil, nil); err != nil {
		t.Errorf("expected printing a nil tree to be a no-op, got %v", err)
	}
}
