// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"fmt"
	"sync"

	"golang.org/x/exp/constraints"
)

// Allocator hands out and takes back tree nodes. Every node a tree owns
// came from Alloc and goes back through Free exactly once.
type Allocator[K constraints.Ordered] interface {
	Alloc(key K) (*Node[K], error)
	Free(n *Node[K])
}

// HeapAllocator leaves node memory to the garbage collector.
type HeapAllocator[K constraints.Ordered] struct{}

// Alloc returns a fresh leaf holding key. It never fails.
func (HeapAllocator[K]) Alloc(key K) (*Node[K], error) {
	return &Node[K]{key: key}, nil
}

// Free unlinks n from its children and leaves the rest to the collector.
func (HeapAllocator[K]) Free(n *Node[K]) {
	n.left = nil
	n.right = nil
}

// CountingAllocator keeps track of live and freed nodes, and can be capped
// so that allocation fails once Limit nodes are live. A zero Limit means
// no cap.
type CountingAllocator[K constraints.Ordered] struct {
	Limit int

	m       sync.Mutex
	live    int
	total   int
	freed   int
	bad     int
	visited map[*Node[K]]int
}

// NewCountingAllocator returns an allocator that refuses to have more than
// limit nodes live at once; 0 disables the cap.
func NewCountingAllocator[K constraints.Ordered](limit int) *CountingAllocator[K] {
	return &CountingAllocator[K]{
		Limit:   limit,
		visited: make(map[*Node[K]]int),
	}
}

// Alloc returns a fresh leaf holding key, or an error wrapping
// ErrAllocation once Limit nodes are live.
func (a *CountingAllocator[K]) Alloc(key K) (*Node[K], error) {
	a.m.Lock()
	defer a.m.Unlock()
	if a.Limit > 0 && a.live >= a.Limit {
		return nil, fmt.Errorf("%w: limit of %d live nodes reached", ErrAllocation, a.Limit)
	}
	a.live++
	a.total++
	n := &Node[K]{key: key}
	if a.visited == nil {
		a.visited = make(map[*Node[K]]int)
	}
	a.visited[n] = 0
	return n, nil
}

// Free takes n back. Freeing a node twice, or one this allocator never
// handed out, is recorded but does not change Live.
func (a *CountingAllocator[K]) Free(n *Node[K]) {
	a.m.Lock()
	defer a.m.Unlock()
	a.freed++
	if a.visited == nil {
		a.visited = make(map[*Node[K]]int)
	}
	c, ok := a.visited[n]
	a.visited[n] = c + 1
	if ok && c == 0 {
		a.live--
	} else {
		a.bad++
	}
	n.left = nil
	n.right = nil
}

// Live is the number of nodes handed out and not yet freed.
func (a *CountingAllocator[K]) Live() int {
	a.m.Lock()
	defer a.m.Unlock()
	return a.live
}

// Total is the number of nodes ever handed out.
func (a *CountingAllocator[K]) Total() int {
	a.m.Lock()
	defer a.m.Unlock()
	return a.total
}

// Freed is the number of Free calls seen.
func (a *CountingAllocator[K]) Freed() int {
	a.m.Lock()
	defer a.m.Unlock()
	return a.freed
}

// BadFrees is the number of Free calls on a node that was already freed
// or never allocated here.
func (a *CountingAllocator[K]) BadFrees() int {
	a.m.Lock()
	defer a.m.Unlock()
	return a.bad
}

// FreedOnce reports whether every node handed out has been freed exactly
// one time. It is false while any node is still live, so call it after the
// tree has been freed; BadFrees is the check that holds mid-way.
func (a *CountingAllocator[K]) FreedOnce() bool {
	a.m.Lock()
	defer a.m.Unlock()
	for _, c := range a.visited {
		if c != 1 {
			return false
		}
	}
	return true
}
