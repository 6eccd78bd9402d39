// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Insert adds key to the AVL tree rooted at root and returns the root to
// keep, whether a node was added and any allocation error. A key that is
// already present is left alone: nothing is allocated and no balance factor
// moves. On error the tree is unchanged; a NaN key fails with
// ErrInvalidKey.
//
// The insertion runs in three steps over a single root-to-leaf path:
//
//  1. descend to the empty slot, remembering the pivot (the deepest node on
//     the path whose balance is non-zero) and its parent, then hang the leaf;
//  2. walk from below the pivot down to the new leaf, tilting every balance
//     factor toward the side the key went;
//  3. tilt the pivot itself and, when it reaches -2 or +2, apply one of the
//     four rotations and relink the pivot's parent.
//
// Nodes above the pivot never change: either the pivot absorbs the growth or
// the rotation gives its sub-tree back its old height.
func Insert[K constraints.Ordered](alloc Allocator[K], root *Node[K], key K) (*Node[K], bool, error) {
	res, err := insert(alloc, root, key)
	return res.root, res.added, err
}

type insertResult[K constraints.Ordered] struct {
	root     *Node[K]
	added    bool
	rotation rotation
	pivot    K
}

func insert[K constraints.Ordered](alloc Allocator[K], root *Node[K], key K) (insertResult[K], error) {
	// NaN is neither equal to nor ordered against any key
	if key != key {
		return insertResult[K]{root: root}, fmt.Errorf("insert %v: %w", key, ErrInvalidKey)
	}
	if root == nil {
		leaf, err := NewLeaf(alloc, key)
		if err != nil {
			return insertResult[K]{}, err
		}
		return insertResult[K]{root: leaf, added: true}, nil
	}

	// descend
	pivot := root
	var pivotParent, parent *Node[K]
	for n := root; n != nil; {
		if key == n.key {
			return insertResult[K]{root: root}, nil
		}
		if n.balance != 0 {
			pivot, pivotParent = n, parent
		}
		parent = n
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}

	leaf, err := NewLeaf(alloc, key)
	if err != nil {
		return insertResult[K]{root: root}, err
	}
	if key < parent.key {
		parent.left = leaf
	} else {
		parent.right = leaf
	}

	// propagate, every node strictly between pivot and leaf had balance 0
	n := pivot.right
	if key < pivot.key {
		n = pivot.left
	}
	for n != leaf {
		if key < n.key {
			n.balance--
			n = n.left
		} else {
			n.balance++
			n = n.right
		}
	}

	// resolve at the pivot
	if key < pivot.key {
		pivot.balance--
	} else {
		pivot.balance++
	}
	res := insertResult[K]{root: root, added: true}
	r := classify(pivot)
	if r == rotateNone {
		return res, nil
	}

	sub, err := rebalance(pivot, r)
	if err != nil {
		// cannot happen while the stored factors are truthful
		return res, err
	}
	switch {
	case pivotParent == nil:
		res.root = sub
	case pivotParent.left == pivot:
		pivotParent.left = sub
	default:
		pivotParent.right = sub
	}
	res.rotation = r
	res.pivot = pivot.key
	return res, nil
}
