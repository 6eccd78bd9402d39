// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAVL(t *testing.T) {
	t.Parallel()

	type exp struct {
		desc string
		root *Node[int]
		want bool
	}
	cases := []exp{
		{"empty", nil, true},
		{"leaf", mk(1, 0, nil, nil), true},
		{"left chain of three", mk(3, -2, mk(2, -1, mk(1, 0, nil, nil), nil), nil), false},
		{
			"children heights differ by two",
			mk(10, -2, mk(5, -1, mk(3, 0, nil, nil), nil), nil),
			false,
		},
		{
			"imbalance below a balanced root",
			mk(10, 0,
				mk(5, 1, nil, mk(7, 1, nil, mk(8, 0, nil, nil))),
				mk(20, 1, nil, mk(30, 1, nil, mk(40, 0, nil, nil)))),
			false,
		},
		{
			"balanced with one-sided leaves",
			mk(5, -1, mk(2, -1, mk(-2, 1, nil, mk(0, 0, nil, nil)), mk(4, 0, nil, nil)), mk(7, 1, nil, mk(99, 0, nil, nil))),
			true,
		},
	}
	for _, test := range cases {
		require.Equal(t, test.want, IsAVL(test.root), test.desc)
	}
}

func TestIsAVLIgnoresStoredFactors(t *testing.T) {
	t.Parallel()

	// every factor claims perfect balance, the shape says otherwise
	lying := mk(3, 0, mk(2, 0, mk(1, 0, nil, nil), nil), nil)
	require.False(t, IsAVL(lying))

	// the shape is fine but node 2 stores a stale factor
	stale := mk(5, -1, mk(2, 0, mk(-2, 1, nil, mk(0, 0, nil, nil)), mk(4, 0, nil, nil)), mk(7, 1, nil, mk(99, 0, nil, nil)))
	require.True(t, IsAVL(stale))
	err := Verify(stale)
	require.ErrorIs(t, err, ErrCorrupt)
	require.Contains(t, err.Error(), "node 2 stores balance 0, actual -1")
}

func TestIsBST(t *testing.T) {
	t.Parallel()

	require.True(t, IsBST[int](nil))
	require.True(t, IsBST(mk(2, 0, mk(1, 0, nil, nil), mk(3, 0, nil, nil))))
	require.False(t, IsBST(mk(2, 0, mk(3, 0, nil, nil), mk(1, 0, nil, nil))))
	require.False(t, IsBST(mk(2, 0, mk(2, 0, nil, nil), nil)))

	// locally ordered but 6 sits in the left sub-tree of 5
	require.False(t, IsBST(mk(5, -1, mk(3, 1, nil, mk(6, 0, nil, nil)), nil)))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	require.NoError(t, Verify[int](nil))
	require.NoError(t, Verify(mk(2, 0, mk(1, 0, nil, nil), mk(3, 0, nil, nil))))

	type exp struct {
		desc string
		root *Node[int]
		msg  string
	}
	cases := []exp{
		{
			"key out of order deep down",
			mk(5, -1, mk(3, 1, nil, mk(6, 0, nil, nil)), nil),
			"key 6 not below 5",
		},
		{
			"key out of order on the right",
			mk(5, 1, nil, mk(8, -1, mk(4, 0, nil, nil), nil)),
			"key 4 not above 5",
		},
		{
			"height imbalance",
			mk(3, -2, mk(2, -1, mk(1, 0, nil, nil), nil), nil),
			"node 3 is out of balance by -2",
		},
		{
			"stale factor",
			mk(2, 1, mk(1, 0, nil, nil), mk(3, 0, nil, nil)),
			"node 2 stores balance 1, actual 0",
		},
	}
	for _, test := range cases {
		err := Verify(test.root)
		require.ErrorIs(t, err, ErrCorrupt, test.desc)
		require.Contains(t, err.Error(), test.msg, test.desc)
	}
}

func TestInOrderAndWalk(t *testing.T) {
	t.Parallel()

	require.Empty(t, InOrder[int](nil))

	root := mk(4, 0, mk(2, 0, mk(1, 0, nil, nil), mk(3, 0, nil, nil)), mk(6, 0, mk(5, 0, nil, nil), mk(7, 0, nil, nil)))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, InOrder(root))

	var seen []int
	stopped := Walk(root, func(k int) bool {
		seen = append(seen, k)
		return k == 4
	})
	require.True(t, stopped)
	require.Equal(t, []int{1, 2, 3, 4}, seen)

	seen = seen[:0]
	require.False(t, Walk(root, func(k int) bool {
		seen = append(seen, k)
		return false
	}))
	require.Len(t, seen, 7)
}

func TestInOrderLarge(t *testing.T) {
	t.Parallel()

	tree := New[int](nil)
	for k := 100000; k > 0; k-- {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}
	keys := InOrder(tree.Root())
	require.Len(t, keys, 100000)
	for i, k := range keys {
		require.Equal(t, i+1, k)
	}
}
