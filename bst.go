// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NewLeaf allocates a node holding key with no children and a zero balance.
// NaN keys are refused with ErrInvalidKey before the allocator is called.
func NewLeaf[K constraints.Ordered](alloc Allocator[K], key K) (*Node[K], error) {
	if key != key {
		return nil, fmt.Errorf("new leaf %v: %w", key, ErrInvalidKey)
	}
	n, err := alloc.Alloc(key)
	if err != nil {
		return nil, fmt.Errorf("new leaf %v: %w", key, err)
	}
	if n == nil {
		return nil, fmt.Errorf("new leaf %v: %w", key, ErrAllocation)
	}
	n.key = key
	n.balance = 0
	n.left = nil
	n.right = nil
	return n, nil
}

// Search reports whether key is stored in the tree. It works on any binary
// search tree, balanced or not.
func Search[K constraints.Ordered](root *Node[K], key K) bool {
	return lookup(root, key) != nil
}

func lookup[K constraints.Ordered](n *Node[K], key K) *Node[K] {
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// InsertUnbalanced is the plain binary search tree insert: the key goes in
// as a leaf at the only place it can, nothing is rebalanced and no balance
// factor is touched. A key that is already present is left alone and a NaN
// key fails with ErrInvalidKey.
//
// The returned node is the root to keep, it differs from root when root is nil.
func InsertUnbalanced[K constraints.Ordered](alloc Allocator[K], root *Node[K], key K) (*Node[K], error) {
	if key != key {
		return root, fmt.Errorf("insert %v: %w", key, ErrInvalidKey)
	}
	if root == nil {
		return NewLeaf(alloc, key)
	}
	var err error
	switch {
	case key < root.key:
		root.left, err = InsertUnbalanced(alloc, root.left, key)
	case key > root.key:
		root.right, err = InsertUnbalanced(alloc, root.right, key)
	}
	return root, err
}

// Free hands every node of the tree back to the allocator, children before
// their parent. The caller must drop its reference to root afterwards.
func Free[K constraints.Ordered](alloc Allocator[K], root *Node[K]) {
	if root == nil {
		return
	}
	left, right := root.left, root.right
	Free(alloc, left)
	Free(alloc, right)
	alloc.Free(root)
}

// Height returns the number of edges on the longest path from root to a
// leaf, -1 for the empty tree. It walks the whole tree and ignores the
// stored balance factors.
func Height[K constraints.Ordered](root *Node[K]) int {
	if root == nil {
		return -1
	}
	return 1 + max(Height(root.left), Height(root.right))
}

// BalancedHeight returns the height of a valid AVL tree in O(log n) by
// following the taller child at each level, as told by the stored balance
// factors. On a tree whose factors are stale the answer is meaningless.
func BalancedHeight[K constraints.Ordered](root *Node[K]) int {
	h := -1
	for n := root; n != nil; h++ {
		if n.balance < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return h
}
