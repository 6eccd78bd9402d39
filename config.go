// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Config holds what a Tree needs besides its nodes.
type Config[K constraints.Ordered] struct {
	Allocator Allocator[K]   // Source of nodes; the heap by default.
	Logger    zerolog.Logger // Rotations are logged at debug level.
	Metrics   *Metrics       // Optional, nil disables metrics.
}

// NewConfig returns a configuration with a heap allocator, a no-op logger
// and no metrics.
func NewConfig[K constraints.Ordered]() *Config[K] {
	return &Config[K]{
		Allocator: HeapAllocator[K]{},
		Logger:    zerolog.Nop(),
	}
}

// WithAllocator sets where the tree gets its nodes from.
func (c *Config[K]) WithAllocator(a Allocator[K]) *Config[K] {
	c.Allocator = a
	return c
}

// WithLogger sets the logger the tree reports rotations and errors to.
func (c *Config[K]) WithLogger(l zerolog.Logger) *Config[K] {
	c.Logger = l
	return c
}

// WithMetrics sets the collectors the tree updates; nil turns them off.
func (c *Config[K]) WithMetrics(m *Metrics) *Config[K] {
	c.Metrics = m
	return c
}
