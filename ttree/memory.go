// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ttree

import (
	"unsafe"

	"github.com/ttreedb/ttree/common"
)

var _ common.MemoryFootprintProvider = (*Tree[int, int])(nil)
var _ common.MemoryFootprintProvider = (*node[int, int])(nil)

// GetMemoryFootprint reports the Tree's total in-memory size by delegating
// to the root node, which recursively accounts for its own item window and
// both children.
func (t *Tree[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	fp := common.NewMemoryFootprint(unsafe.Sizeof(*t))
	if t.root != nil {
		fp.AddChild("nodes", t.root.GetMemoryFootprint())
	}
	return fp
}

// GetMemoryFootprint reports the size of n's own fixed-capacity item window
// plus, recursively, the size of its left and right subtrees.
func (n *node[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	selfSize := unsafe.Sizeof(*n) + uintptr(cap(n.items))*unsafe.Sizeof(n.items[0])
	fp := common.NewMemoryFootprint(selfSize)
	if left := n.left(); left != nil {
		fp.AddChild("left", left.GetMemoryFootprint())
	}
	if right := n.right(); right != nil {
		fp.AddChild("right", right.GetMemoryFootprint())
	}
	return fp
}
