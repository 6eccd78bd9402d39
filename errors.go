// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import "errors"

var (
	// ErrAllocation is returned when the allocator cannot hand out a new node.
	ErrAllocation = errors.New("avl: node allocation failed")

	// ErrPrecondition is returned when a rotation is asked for on a node
	// that lacks the child it pivots on.
	ErrPrecondition = errors.New("avl: rotation precondition violated")

	// ErrInvalidKey is returned for a key that does not equal itself, such
	// as a floating point NaN. Such a key has no place in the order.
	ErrInvalidKey = errors.New("avl: key is not comparable to itself")

	// ErrCorrupt is returned by Verify when a tree breaks one of its invariants.
	ErrCorrupt = errors.New("avl: corrupt tree")
)
