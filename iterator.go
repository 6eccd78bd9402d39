// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"golang.org/x/exp/constraints"
)

// Iterator walks the keys of a tree in ascending order. It keeps the path to
// the next key on an explicit stack, so nodes need no parent links.
//
// An iterator must not be used after the tree it was made from is modified.
type Iterator[K constraints.Ordered] struct {
	root  *Node[K]
	stack []*Node[K]
	ready bool
}

// NewIterator returns an iterator positioned before the lowest key.
func NewIterator[K constraints.Ordered](root *Node[K]) *Iterator[K] {
	return &Iterator[K]{root: root}
}

func (i *Iterator[K]) pushLeft(n *Node[K]) {
	for ; n != nil; n = n.left {
		i.stack = append(i.stack, n)
	}
}

// Next returns the next key in ascending order, false once the keys are
// exhausted.
func (i *Iterator[K]) Next() (K, bool) {
	var zero K
	if !i.ready {
		i.ready = true
		i.stack = i.stack[:0]
		i.pushLeft(i.root)
	}
	if len(i.stack) == 0 {
		return zero, false
	}
	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(n.right)
	return n.key, true
}

// SeekLowerBound positions the iterator so that the next call to Next
// returns the smallest key greater than or equal to key.
func (i *Iterator[K]) SeekLowerBound(key K) {
	i.ready = true
	i.stack = i.stack[:0]
	for n := i.root; n != nil; {
		if key <= n.key {
			i.stack = append(i.stack, n)
			n = n.left
		} else {
			n = n.right
		}
	}
}
