package treeprint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"

	"github.com/npillmayer/bintree"
)

// Config holds parameters for rendering a tree.
type Config struct {
	// LineWidth is the maximum line length in fixed-width character positions.
	LineWidth int
	// Context provides regional width heuristics for East Asian scripts.
	// If it is nil, uax11.LatinContext is used.
	Context *uax11.Context
}

// Palette maps node roles to output colors. A nil entry means uncolored
// output for that role.
type Palette struct {
	Inner *color.Color // nodes with at least one child
	Leaf  *color.Color // nodes with both slots empty
	Slot  *color.Color // the L/R slot markers
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Inner: color.New(color.FgBlue),
		Leaf:  color.New(color.FgRed),
	}
}

// Print renders tree to w, one node per line in pre-order, children indented
// under their parent and prefixed with the name of the slot they occupy.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive). If pal is nil, a default
// palette is used.
func Print[T any](tree *bintree.Tree[T], w io.Writer, config *Config, pal *Palette) error {
	if tree == nil {
		return nil
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if pal == nil {
		pal = makeDefaultPalette()
	}
	return printNode(tree.Root(), w, config, pal, "", 0)
}

// PrintToConsole renders tree to stdout with a terminal-derived config.
func PrintToConsole[T any](tree *bintree.Tree[T]) error {
	return Print(tree, os.Stdout, nil, nil)
}

func printNode[T any](node *bintree.Node[T], w io.Writer, config *Config, pal *Palette,
	slot string, depth int) error {
	//
	indent := strings.Repeat("  ", depth)
	if _, err := io.WriteString(w, indent); err != nil {
		return err
	}
	used := len(indent)
	if slot != "" {
		if err := colored(w, pal.Slot, slot+" "); err != nil {
			return err
		}
		used += len(slot) + 1
	}
	label := fmt.Sprintf("%v", node.Value())
	if max := config.LineWidth - used; max > 0 {
		label = clipToWidth(label, max, config.Context)
	}
	children := node.Children()
	c := pal.Inner
	if children.Left == nil && children.Right == nil {
		c = pal.Leaf
	}
	if err := colored(w, c, label); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, dir := range []bintree.Dir{bintree.Left, bintree.Right} {
		child := children.Pick(dir)
		if child == nil {
			continue
		}
		if err := printNode(child, w, config, pal, dir.String(), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// clipToWidth shortens s to at most max fixed-width character positions,
// measured over grapheme clusters with the regional width heuristics of
// UAX#11. Clipping never splits a UTF-8 sequence.
func clipToWidth(s string, max int, context *uax11.Context) string {
	if uax11.StringWidth(grapheme.StringFromString(s), context) <= max {
		return s
	}
	clipped := ""
	for _, r := range s {
		cand := clipped + string(r)
		if uax11.StringWidth(grapheme.StringFromString(cand), context) > max {
			break
		}
		clipped = cand
	}
	return clipped
}

func colored(w io.Writer, c *color.Color, s string) error {
	if c == nil {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := c.Fprint(w, s)
	return err
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("format", "treeprint").Infof("setting line length to %d en", config.LineWidth)
	return config
}
