// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/emicklei/dot"
	"golang.org/x/exp/constraints"
)

// DotGraph renders the tree as a directed graph. Each node is labelled with
// its key and carries its balance factor as an external label; every
// non-empty child gets an edge from its parent.
func DotGraph[K constraints.Ordered](name string, root *Node[K]) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.ID(name)
	graph.Attr("rankdir", "TB")

	if root == nil {
		return graph
	}

	id := 0
	var traverse func(n *Node[K], parent *dot.Node)
	traverse = func(n *Node[K], parent *dot.Node) {
		gn := graph.Node("n" + strconv.Itoa(id))
		id++
		gn.Label(fmt.Sprint(n.key))
		gn.Attr("xlabel", strconv.Itoa(int(n.balance)))
		if parent != nil {
			graph.Edge(*parent, gn)
		}
		if n.left != nil {
			traverse(n.left, &gn)
		}
		if n.right != nil {
			traverse(n.right, &gn)
		}
	}
	traverse(root, nil)

	return graph
}

// WriteDot writes the graph of the tree to w.
func WriteDot[K constraints.Ordered](w io.Writer, name string, root *Node[K]) error {
	_, err := io.WriteString(w, DotGraph(name, root).String())
	return err
}

// WriteDotFile writes the graph of the tree to name.dot, replacing any
// existing file. Render it with e.g. `dot -Tsvg name.dot -o name.svg`.
func WriteDotFile[K constraints.Ordered](name string, root *Node[K]) error {
	f, err := os.Create(name + ".dot")
	if err != nil {
		return fmt.Errorf("create dot file: %w", err)
	}
	if err := WriteDot(f, filepath.Base(name), root); err != nil {
		f.Close()
		return fmt.Errorf("write dot file: %w", err)
	}
	return f.Close()
}
