// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"math/rand"
	"strconv"
)

const (
	orderAsc    = "asc"
	orderDesc   = "desc"
	orderRandom = "random"
)

// parseKeys turns command line arguments into integer keys.
func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", a, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// generateKeys returns the keys 1..count in the requested order. Random
// order is a permutation drawn from seed, so runs are repeatable.
func generateKeys(count int, order string, seed int64) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", count)
	}
	keys := make([]int, count)
	switch order {
	case orderAsc:
		for i := range keys {
			keys[i] = i + 1
		}
	case orderDesc:
		for i := range keys {
			keys[i] = count - i
		}
	case orderRandom:
		for i, k := range rand.New(rand.NewSource(seed)).Perm(count) {
			keys[i] = k + 1
		}
	default:
		return nil, fmt.Errorf("unknown order %q, want %s, %s or %s", order, orderAsc, orderDesc, orderRandom)
	}
	return keys, nil
}
