// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"golang.org/x/exp/constraints"
)

// WalkFn is used when walking the tree. Takes a
// key, returning if iteration should be terminated.
type WalkFn[K constraints.Ordered] func(key K) bool

// Walk visits the keys in ascending order until fn asks to stop. It returns
// true when the walk was cut short.
func Walk[K constraints.Ordered](root *Node[K], fn WalkFn[K]) bool {
	if root == nil {
		return false
	}
	if Walk(root.left, fn) {
		return true
	}
	if fn(root.key) {
		return true
	}
	return Walk(root.right, fn)
}

// InOrder returns the keys of the tree in ascending order.
func InOrder[K constraints.Ordered](root *Node[K]) []K {
	return appendInOrder(make([]K, 0, 16), root)
}

func appendInOrder[K constraints.Ordered](keys []K, n *Node[K]) []K {
	if n == nil {
		return keys
	}
	keys = appendInOrder(keys, n.left)
	keys = append(keys, n.key)
	return appendInOrder(keys, n.right)
}
