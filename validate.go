// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// IsAVL reports whether the heights of the two sub-trees of every node
// differ by at most one. Heights are recomputed, the stored balance factors
// are not trusted.
func IsAVL[K constraints.Ordered](root *Node[K]) bool {
	_, ok := balancedHeight(root)
	return ok
}

func balancedHeight[K constraints.Ordered](n *Node[K]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}
	if d := rh - lh; d < -1 || d > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// IsBST reports whether an in-order walk yields strictly increasing keys.
func IsBST[K constraints.Ordered](root *Node[K]) bool {
	var (
		prev  K
		first = true
		ok    = true
	)
	Walk(root, func(key K) bool {
		if !first && key <= prev {
			ok = false
			return true
		}
		prev, first = key, false
		return false
	})
	return ok
}

// Verify checks every invariant of the tree: key order, height balance and
// that each stored balance factor equals the real height difference. The
// first violation found is returned wrapping ErrCorrupt.
func Verify[K constraints.Ordered](root *Node[K]) error {
	_, err := verify(root, nil, nil)
	return err
}

func verify[K constraints.Ordered](n *Node[K], lo, hi *K) (int, error) {
	if n == nil {
		return -1, nil
	}
	if lo != nil && n.key <= *lo {
		return 0, fmt.Errorf("%w: key %v not above %v", ErrCorrupt, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, fmt.Errorf("%w: key %v not below %v", ErrCorrupt, n.key, *hi)
	}
	lh, err := verify(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rh, err := verify(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	d := rh - lh
	if d < -1 || d > 1 {
		return 0, fmt.Errorf("%w: node %v is out of balance by %d", ErrCorrupt, n.key, d)
	}
	if int(n.balance) != d {
		return 0, fmt.Errorf("%w: node %v stores balance %d, actual %d", ErrCorrupt, n.key, n.balance, d)
	}
	return 1 + max(lh, rh), nil
}
