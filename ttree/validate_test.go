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
	"testing"

	"github.com/ttreedb/ttree/common"
)

func newIntTree(t *testing.T, m int) *Tree[int, int] {
	t.Helper()
	tr, err := New[int, int](m, true, common.OrderedComparator[int]{}, func(v int) int { return v })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tr
}

// height returns the structural height of n in nodes, 0 for nil.
func height[K any, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	lh, rh := height(n.left()), height(n.right())
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// validate walks the whole tree checking its structural invariants:
// window bounds, intra-node and inter-node ordering, AVL balance, parent
// links, and successor-chain consistency with a plain in-order traversal.
// The number of keys held by internal nodes is not checked.
func validate(t *testing.T, tr *Tree[int, int]) {
	t.Helper()
	if tr.root == nil {
		return
	}
	var flattened []int
	var walk func(n, parent *node[int, int], side nodeSide, lo, hi *int, hasLo, hasHi bool)
	walk = func(n, parent *node[int, int], side nodeSide, lo, hi *int, hasLo, hasHi bool) {
		if n == nil {
			return
		}
		if n.parent != parent {
			t.Fatalf("node %v: parent link mismatch", n.items[n.minIdx:n.maxIdx+1])
		}
		if n.side != side {
			t.Fatalf("node %v: side mismatch, want %v got %v", n.items[n.minIdx:n.maxIdx+1], side, n.side)
		}
		if n.minIdx > n.maxIdx {
			t.Fatalf("node %v: empty node left in tree", n.items)
		}
		if n.minIdx < 0 || n.maxIdx >= len(n.items) {
			t.Fatalf("node window out of bounds: min=%d max=%d cap=%d", n.minIdx, n.maxIdx, len(n.items))
		}
		for i := n.minIdx; i < n.maxIdx; i++ {
			if tr.compare(n.items[i], n.items[i+1]) >= 0 {
				t.Fatalf("node items not strictly sorted at idx %d: %v", i, n.items[n.minIdx:n.maxIdx+1])
			}
		}
		if hasLo && tr.compare(n.items[n.minIdx], *lo) <= 0 {
			t.Fatalf("node min %d not greater than bound %d", n.items[n.minIdx], *lo)
		}
		if hasHi && tr.compare(n.items[n.maxIdx], *hi) >= 0 {
			t.Fatalf("node max %d not smaller than bound %d", n.items[n.maxIdx], *hi)
		}

		lh, rh := height(n.left()), height(n.right())
		wantBfc := int8(rh - lh)
		if n.bfc != wantBfc {
			t.Fatalf("node %v: bfc=%d want %d (lh=%d rh=%d)", n.items[n.minIdx:n.maxIdx+1], n.bfc, wantBfc, lh, rh)
		}
		if n.bfc < -1 || n.bfc > 1 {
			t.Fatalf("node %v: unbalanced bfc=%d", n.items[n.minIdx:n.maxIdx+1], n.bfc)
		}

		nmin, nmax := n.items[n.minIdx], n.items[n.maxIdx]
		walk(n.left(), n, sideLeft, lo, &nmin, hasLo, true)
		flattened = append(flattened, n.items[n.minIdx:n.maxIdx+1]...)
		walk(n.right(), n, sideRight, &nmax, hi, true, hasHi)
	}
	walk(tr.root, nil, sideRoot, nil, nil, false, false)

	var viaSuccessor []int
	count := 0
	for n := tr.leftmost(tr.root); n != nil; n = n.successor {
		viaSuccessor = append(viaSuccessor, n.items[n.minIdx:n.maxIdx+1]...)
		count++
		if count > 1_000_000 {
			t.Fatalf("successor chain did not terminate")
		}
	}
	if len(viaSuccessor) != len(flattened) {
		t.Fatalf("successor chain length %d != in-order length %d", len(viaSuccessor), len(flattened))
	}
	for i := range flattened {
		if viaSuccessor[i] != flattened[i] {
			t.Fatalf("successor chain diverges from in-order traversal at %d: %d != %d", i, viaSuccessor[i], flattened[i])
		}
	}
	for i := 0; i+1 < len(flattened); i++ {
		if flattened[i] >= flattened[i+1] {
			t.Fatalf("global ordering broken at %d: %d >= %d", i, flattened[i], flattened[i+1])
		}
	}
	if tr.rightmost(tr.root).successor != nil {
		t.Fatalf("rightmost node has a non-nil successor")
	}
}
