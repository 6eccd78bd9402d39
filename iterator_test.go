// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"slices"
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

type readableString string

func collect(it *Iterator[string]) []string {
	var out []string
	for {
		k, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, k)
	}
}

func collectReverse(it *ReverseIterator[string]) []string {
	var out []string
	for {
		k, ok := it.Previous()
		if !ok {
			return out
		}
		out = append(out, k)
	}
}

func TestIterator(t *testing.T) {
	t.Parallel()

	keys := []string{"foo", "bar", "baz", "zip", "a", "foobar", "f"}
	tree := buildTree(t, keys...)

	want := slices.Clone(keys)
	slices.Sort(want)
	require.Equal(t, want, collect(tree.Iterator()))

	slices.Reverse(want)
	require.Equal(t, want, collectReverse(tree.ReverseIterator()))

	_, ok := New[string](nil).Iterator().Next()
	require.False(t, ok)
	_, ok = New[string](nil).ReverseIterator().Previous()
	require.False(t, ok)
}

func TestIterateLowerBoundFuzz(t *testing.T) {
	tree := New[string](nil)
	var set []string

	// Each call adds a new random key to the tree, then checks that seeking to
	// a random key and iterating to the end yields the same list as filtering
	// a plain sorted slice of the keys.

	treeAddAndScan := func(newKey, searchKey readableString) []string {
		_, err := tree.Insert(string(newKey))
		require.NoError(t, err)

		it := tree.Iterator()
		it.SeekLowerBound(string(searchKey))
		return collect(it)
	}

	sliceAddSortAndFilter := func(newKey, searchKey readableString) []string {
		set = append(set, string(newKey))
		sort.Strings(set)

		var result []string
		for i, k := range set {
			if i > 0 && set[i-1] == k {
				continue
			}
			if k >= string(searchKey) {
				result = append(result, k)
			}
		}
		return result
	}

	if err := quick.CheckEqual(treeAddAndScan, sliceAddSortAndFilter, nil); err != nil {
		t.Error(err)
	}
}

func TestIterateLowerBound(t *testing.T) {
	t.Parallel()

	// these should be defined in order
	var fixedLenKeys = []string{
		"00000",
		"00001",
		"00004",
		"00010",
		"00020",
		"20020",
	}

	// these should be defined in order
	var mixedLenKeys = []string{
		"a1",
		"abc",
		"barbazboo",
		"f",
		"foo",
		"found",
		"zap",
		"zip",
	}

	type exp struct {
		keys   []string
		search string
		want   []string
	}
	cases := []exp{
		{fixedLenKeys, "00000", fixedLenKeys},
		{fixedLenKeys, "00003", []string{"00004", "00010", "00020", "20020"}},
		{fixedLenKeys, "00010", []string{"00010", "00020", "20020"}},
		{fixedLenKeys, "20000", []string{"20020"}},
		{fixedLenKeys, "20020", []string{"20020"}},
		{fixedLenKeys, "20022", nil},
		{mixedLenKeys, "A", mixedLenKeys},
		{mixedLenKeys, "a1", mixedLenKeys},
		{mixedLenKeys, "b", []string{"barbazboo", "f", "foo", "found", "zap", "zip"}},
		{mixedLenKeys, "bar", []string{"barbazboo", "f", "foo", "found", "zap", "zip"}},
		{mixedLenKeys, "barbazboo0", []string{"f", "foo", "found", "zap", "zip"}},
		{mixedLenKeys, "zippy", nil},
		{mixedLenKeys, "zi", []string{"zip"}},
		{[]string{}, "", nil},
	}

	for _, test := range cases {
		tree := buildTree(t, test.keys...)
		it := tree.Iterator()
		it.SeekLowerBound(test.search)
		require.Equal(t, test.want, collect(it), "search %q", test.search)
	}
}

func TestIterateReverseLowerBound(t *testing.T) {
	t.Parallel()

	keys := []string{"00001", "00004", "00010", "00020", "20020"}
	type exp struct {
		search string
		want   []string
	}
	cases := []exp{
		{"00000", nil},
		{"00001", []string{"00001"}},
		{"00005", []string{"00004", "00001"}},
		{"00020", []string{"00020", "00010", "00004", "00001"}},
		{"99999", []string{"20020", "00020", "00010", "00004", "00001"}},
	}
	tree := buildTree(t, keys...)
	for _, test := range cases {
		it := tree.ReverseIterator()
		it.SeekReverseLowerBound(test.search)
		require.Equal(t, test.want, collectReverse(it), "search %q", test.search)
	}
}

func TestIteratorSeekAfterUse(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, "a", "b", "c", "d")
	it := tree.Iterator()
	k, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "a", k)

	it.SeekLowerBound("c")
	require.Equal(t, []string{"c", "d"}, collect(it))
}
