// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

const (
	digestNil  byte = 0
	digestNode byte = 1
)

// Digest hashes the shape of the tree together with its keys and stored
// balance factors. Two trees built by the same sequence of inserts have the
// same digest; a rotation that went differently does not.
func Digest[K constraints.Ordered](root *Node[K]) uint64 {
	d := xxhash.New()
	var buf []byte
	var walk func(n *Node[K])
	walk = func(n *Node[K]) {
		if n == nil {
			d.Write([]byte{digestNil})
			return
		}
		k := fmt.Sprint(n.key)
		buf = append(buf[:0], digestNode)
		buf = binary.AppendUvarint(buf, uint64(len(k)))
		buf = append(buf, k...)
		buf = append(buf, byte(n.balance))
		d.Write(buf)
		walk(n.left)
		walk(n.right)
	}
	walk(root)
	return d.Sum64()
}
