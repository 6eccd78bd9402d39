// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"golang.org/x/exp/constraints"
)

// ReverseIterator walks the keys of a tree in descending order.
type ReverseIterator[K constraints.Ordered] struct {
	root  *Node[K]
	stack []*Node[K]
	ready bool
}

// NewReverseIterator returns an iterator positioned after the highest key.
func NewReverseIterator[K constraints.Ordered](root *Node[K]) *ReverseIterator[K] {
	return &ReverseIterator[K]{root: root}
}

func (ri *ReverseIterator[K]) pushRight(n *Node[K]) {
	for ; n != nil; n = n.right {
		ri.stack = append(ri.stack, n)
	}
}

// Previous returns the previous key in descending order
func (ri *ReverseIterator[K]) Previous() (K, bool) {
	var zero K
	if !ri.ready {
		ri.ready = true
		ri.stack = ri.stack[:0]
		ri.pushRight(ri.root)
	}
	if len(ri.stack) == 0 {
		return zero, false
	}
	n := ri.stack[len(ri.stack)-1]
	ri.stack = ri.stack[:len(ri.stack)-1]
	ri.pushRight(n.left)
	return n.key, true
}

// SeekReverseLowerBound is used to seek the iterator to the largest key that is
// lower or equal to the given key.
func (ri *ReverseIterator[K]) SeekReverseLowerBound(key K) {
	ri.ready = true
	ri.stack = ri.stack[:0]
	for n := ri.root; n != nil; {
		if n.key <= key {
			ri.stack = append(ri.stack, n)
			n = n.right
		} else {
			n = n.left
		}
	}
}
