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

// Lookup finds the item stored under key. It always returns a cursor: on a
// hit the cursor is Opened at the matching slot; on a miss it is Pending,
// naming either a slot inside the bound node (which may be full), a free
// slot in the deepest node visited, or a child slot that still needs a
// new leaf.
//
// Descent uses the Lehman-Carey rule: each visited node is compared only
// against its minimum key, which keeps descent to one comparison per node.
// The last node for which the query compared greater than the minimum is
// kept as the "bound candidate" and is the only node whose interior is
// ever binary-searched.
func (t *Tree[K, V]) Lookup(key K) (V, *Cursor[K, V], bool) {
	var zero V
	n := t.root
	target := n
	var marked *node[K, V]
	side := sideBound
	idx := firstIdx(t.m)

	if n == nil {
		return zero, &Cursor[K, V]{tree: t, idx: idx, side: sideBound, state: cursorPending}, false
	}

	var lastCmp int
	for n != nil {
		target = n
		min := n.keyMin(t.keyOf)
		lastCmp = t.compare(key, min)
		var ns nodeSide
		if lastCmp < 0 {
			ns = sideLeft
			side = cSideLeft
		} else if lastCmp > 0 {
			marked = n
			ns = sideRight
			side = cSideRight
		} else {
			idx = n.minIdx
			return n.items[idx], &Cursor[K, V]{tree: t, node: n, idx: idx, side: sideBound, state: cursorOpened}, true
		}
		n = n.child(ns)
	}

	if marked != nil {
		c := t.compare(key, marked.keyMax(t.keyOf))
		if c <= 0 {
			target = marked
			side = sideBound
			if c == 0 {
				idx = target.maxIdx
				return target.items[idx], &Cursor[K, V]{tree: t, node: target, idx: idx, side: sideBound, state: cursorOpened}, true
			}
			hitIdx, ok := target.findInWindow(key, target.minIdx+1, target.maxIdx-1, t.keyOf, t.cmp.Compare)
			idx = hitIdx
			if ok {
				return target.items[idx], &Cursor[K, V]{tree: t, node: target, idx: idx, side: sideBound, state: cursorOpened}, true
			}
			return zero, &Cursor[K, V]{tree: t, node: target, idx: idx, side: sideBound, state: cursorPending}, false
		}
	}

	if !target.isFull(t.m) {
		side = sideBound
		if marked != target || lastCmp < 0 {
			idx = target.minIdx
		} else {
			idx = target.maxIdx + 1
		}
	}

	return zero, &Cursor[K, V]{tree: t, node: target, idx: idx, side: side, state: cursorPending}, false
}

// Contains reports whether key is present without constructing a cursor
// for the caller.
func (t *Tree[K, V]) Contains(key K) bool {
	_, _, ok := t.Lookup(key)
	return ok
}
