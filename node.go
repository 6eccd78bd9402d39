// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"golang.org/x/exp/constraints"
)

// Node is a single entry of the tree. A nil *Node is the empty tree.
//
// balance is height(right) - height(left) and is kept up to date by Insert;
// nothing recomputes it on demand.
type Node[K constraints.Ordered] struct {
	key     K
	balance int8
	left    *Node[K]
	right   *Node[K]
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Balance returns the stored balance factor.
func (n *Node[K]) Balance() int {
	return int(n.balance)
}

// Left returns the left sub-tree, nil if there is none.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right sub-tree, nil if there is none.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *Node[K]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// minimum returns the node with the lowest key in the sub-tree
func (n *Node[K]) minimum() *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// maximum returns the node with the highest key in the sub-tree
func (n *Node[K]) maximum() *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
