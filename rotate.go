// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RotateLeft rotates n to the left and returns the node that now occupies
// its old position. The caller must store the result where n used to hang.
//
//	    n              y
//	   / \            / \
//	  a   y    ->    n   c
//	     / \        / \
//	    b   c      a   b
//
// The balance factors of n and y are rewritten from their old values, the
// rest of the sub-tree is not looked at.
func RotateLeft[K constraints.Ordered](n *Node[K]) (*Node[K], error) {
	if n == nil {
		return nil, fmt.Errorf("rotate left on empty tree: %w", ErrPrecondition)
	}
	y := n.right
	if y == nil {
		return nil, fmt.Errorf("rotate left at %v without right child: %w", n.key, ErrPrecondition)
	}

	n.right = y.left
	y.left = n

	n.balance = n.balance - 1 - max(y.balance, 0)
	y.balance = y.balance - 1 + min(n.balance, 0)

	return y, nil
}

// RotateRight rotates n to the right and returns the node that now occupies
// its old position. It is the inverse of RotateLeft.
//
//	      n          x
//	     / \        / \
//	    x   c  ->  a   n
//	   / \            / \
//	  a   b          b   c
func RotateRight[K constraints.Ordered](n *Node[K]) (*Node[K], error) {
	if n == nil {
		return nil, fmt.Errorf("rotate right on empty tree: %w", ErrPrecondition)
	}
	x := n.left
	if x == nil {
		return nil, fmt.Errorf("rotate right at %v without left child: %w", n.key, ErrPrecondition)
	}

	n.left = x.right
	x.right = n

	n.balance = n.balance + 1 - min(x.balance, 0)
	x.balance = x.balance + 1 + max(n.balance, 0)

	return x, nil
}

// rotation names the four ways an insertion can unbalance a pivot.
type rotation int

const (
	rotateNone rotation = iota
	rotateLL
	rotateLR
	rotateRR
	rotateRL
)

func (r rotation) String() string {
	switch r {
	case rotateLL:
		return "ll"
	case rotateLR:
		return "lr"
	case rotateRR:
		return "rr"
	case rotateRL:
		return "rl"
	}
	return "none"
}

// classify picks the rotation that repairs a pivot whose balance has gone
// to -2 or +2.
func classify[K constraints.Ordered](pivot *Node[K]) rotation {
	switch {
	case pivot.balance < -1:
		if pivot.left.balance <= 0 {
			return rotateLL
		}
		return rotateLR
	case pivot.balance > 1:
		if pivot.right.balance >= 0 {
			return rotateRR
		}
		return rotateRL
	}
	return rotateNone
}

// rebalance applies r to pivot and returns the new root of that sub-tree.
func rebalance[K constraints.Ordered](pivot *Node[K], r rotation) (*Node[K], error) {
	switch r {
	case rotateLL:
		return RotateRight(pivot)
	case rotateLR:
		child, err := RotateLeft(pivot.left)
		if err != nil {
			return nil, err
		}
		pivot.left = child
		return RotateRight(pivot)
	case rotateRR:
		return RotateLeft(pivot)
	case rotateRL:
		child, err := RotateRight(pivot.right)
		if err != nil {
			return nil, err
		}
		pivot.right = child
		return RotateLeft(pivot)
	}
	return pivot, nil
}
