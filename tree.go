// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Tree owns the root of an AVL tree together with its node allocator.
//
// A Tree is not safe for concurrent use; guard it with a mutex or keep it
// to a single goroutine.
type Tree[K constraints.Ordered] struct {
	root    *Node[K]
	size    int
	alloc   Allocator[K]
	log     zerolog.Logger
	metrics *Metrics
}

// New creates an empty tree. A nil cfg means NewConfig().
func New[K constraints.Ordered](cfg *Config[K]) *Tree[K] {
	if cfg == nil {
		cfg = NewConfig[K]()
	}
	alloc := cfg.Allocator
	if alloc == nil {
		alloc = HeapAllocator[K]{}
	}
	return &Tree[K]{
		alloc:   alloc,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// Insert adds key, keeping the tree balanced. It returns false if the key
// was already present.
func (t *Tree[K]) Insert(key K) (bool, error) {
	res, err := insert(t.alloc, t.root, key)
	if err != nil {
		t.log.Error().Err(err).Interface("key", key).Msg("insert failed")
		return false, err
	}
	t.root = res.root
	if res.added {
		t.size++
	}
	if res.rotation != rotateNone {
		t.log.Debug().
			Str("case", res.rotation.String()).
			Interface("pivot", res.pivot).
			Interface("key", key).
			Msg("rebalanced")
	}
	t.metrics.observeInsert(res.added, res.rotation)
	t.metrics.observeShape(t.size, t.BalancedHeight())
	return res.added, nil
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return Search(t.root, key)
}

// Len is used to return the number of elements in the tree
func (t *Tree[K]) Len() int {
	return t.size
}

// Root returns the root node, nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Height recomputes the height by visiting every node.
func (t *Tree[K]) Height() int {
	return Height(t.root)
}

// BalancedHeight returns the height using the stored balance factors.
func (t *Tree[K]) BalancedHeight() int {
	return BalancedHeight(t.root)
}

// IsAVL reports whether the tree is height balanced, ignoring stored factors.
func (t *Tree[K]) IsAVL() bool {
	return IsAVL(t.root)
}

// Verify returns the first invariant the tree breaks, wrapping ErrCorrupt.
func (t *Tree[K]) Verify() error {
	return Verify(t.root)
}

// Keys returns every key in ascending order.
func (t *Tree[K]) Keys() []K {
	return appendInOrder(make([]K, 0, t.size), t.root)
}

// Walk calls fn on every key in ascending order until fn returns true.
func (t *Tree[K]) Walk(fn WalkFn[K]) {
	Walk(t.root, fn)
}

// Minimum returns the lowest key, false if the tree is empty.
func (t *Tree[K]) Minimum() (K, bool) {
	var zero K
	n := t.root.minimum()
	if n == nil {
		return zero, false
	}
	return n.key, true
}

// Maximum returns the highest key, false if the tree is empty.
func (t *Tree[K]) Maximum() (K, bool) {
	var zero K
	n := t.root.maximum()
	if n == nil {
		return zero, false
	}
	return n.key, true
}

// Clear frees every node and leaves the tree empty.
func (t *Tree[K]) Clear() {
	Free(t.alloc, t.root)
	t.root = nil
	t.size = 0
	t.metrics.observeShape(0, -1)
}

// Digest returns a hash of the tree's keys, shape and balance factors.
func (t *Tree[K]) Digest() uint64 {
	return Digest(t.root)
}

// Iterator returns an ascending iterator over the current keys.
func (t *Tree[K]) Iterator() *Iterator[K] {
	return NewIterator(t.root)
}

// ReverseIterator returns a descending iterator over the current keys.
func (t *Tree[K]) ReverseIterator() *ReverseIterator[K] {
	return NewReverseIterator(t.root)
}

// WriteDot writes a DOT graph of the tree to w.
func (t *Tree[K]) WriteDot(w io.Writer, name string) error {
	return WriteDot(w, name, t.root)
}
