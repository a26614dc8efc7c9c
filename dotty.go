package bintree

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Payloads are labeled with their %v formatting.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	err := tree.each(func(node *Node[T], depth int) error {
		ID := ids.alloc(node)
		isleaf := node.children.Left == nil && node.children.Right == nil
		label := fmt.Sprintf("%v", node.value)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(isleaf))
		if isleaf {
			return nil
		}
		for _, dir := range []Dir{Left, Right} {
			child := node.children.Pick(dir)
			if child == nil {
				// injective in (ID, dir), so placeholders never merge
				nilid := ID*2 + 10000 + int(dir)
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// each walks the node graph pre-order, left before right.
func (t *Tree[T]) each(f func(node *Node[T], depth int) error) error {
	return eachNode(t.root, 0, f)
}

func eachNode[T any](n *Node[T], depth int, f func(node *Node[T], depth int) error) error {
	if n == nil {
		return nil
	}
	if err := f(n, depth); err != nil {
		return err
	}
	if err := eachNode(n.children.Left, depth+1, f); err != nil {
		return err
	}
	return eachNode(n.children.Right, depth+1, f)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
