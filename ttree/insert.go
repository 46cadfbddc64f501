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

// Insert adds item to the tree. If the tree enforces unique keys and an
// item with an equal key is already present, it returns ErrDuplicateKey
// and leaves the tree unchanged.
func (t *Tree[K, V]) Insert(item V) error {
	_, cursor, found := t.Lookup(t.keyOf(item))
	if found && t.unique {
		return ErrDuplicateKey
	}
	t.InsertAtCursor(cursor, item)
	return nil
}

// InsertAtCursor places item at the position named by cursor, which must
// come from a Lookup miss (Pending state) or from a cursor opened on an
// empty tree. After insertion the cursor is Opened on the key that was
// requested, even if T*-tree rebalancing relocated it during the call.
func (t *Tree[K, V]) InsertAtCursor(cursor *Cursor[K, V], item V) {
	atNode := cursor.node

	if t.root == nil {
		atNode = newNode[K, V](t.m)
		atNode.minIdx, atNode.maxIdx = firstIdx(t.m), firstIdx(t.m)
		atNode.items[firstIdx(t.m)] = item
		t.root = atNode
		atNode.side = sideRoot
		cursor.node = atNode
		cursor.idx = firstIdx(t.m)
		cursor.side = sideBound
		cursor.state = cursorOpened
		return
	}

	if cursor.side == sideBound {
		n := atNode
		if n.isFull(t.m) {
			displaced := n.items[n.maxIdx]
			n.maxIdx--

			n.increaseWindow(t.m, &cursor.idx)
			n.items[cursor.idx] = item
			item = displaced
			cursor.node, cursor.side, cursor.state = n, sideBound, cursorOpened
			spill := &Cursor[K, V]{tree: t, side: sideBound}

			if n.successor == nil || n.right() == nil {
				t.createLeafAndFixup(n, sideRight, spill, item)
				return
			}

			succ := n.successor
			if succ.isFull(t.m) {
				t.createLeafAndFixup(succ, sideLeft, spill, item)
				return
			}

			spill.idx = succ.minIdx
			succ.increaseWindow(t.m, &spill.idx)
			succ.items[spill.idx] = item
			return
		}

		atNode.increaseWindow(t.m, &cursor.idx)
		atNode.items[cursor.idx] = item
		cursor.node = atNode
		cursor.state = cursorOpened
		return
	}

	ns := sideLeft
	if cursor.side == cSideRight {
		ns = sideRight
	}
	t.createLeafAndFixup(atNode, ns, cursor, item)
}

// createLeafAndFixup allocates a new leaf as the given side-child of
// parent, places item in it, and runs the post-insertion fixup starting
// from the new leaf. The cursor is left Opened on the new leaf.
func (t *Tree[K, V]) createLeafAndFixup(parent *node[K, V], ns nodeSide, cursor *Cursor[K, V], item V) {
	n := newNode[K, V](t.m)
	idx := firstIdx(t.m)
	n.items[idx] = item
	n.minIdx, n.maxIdx = idx, idx
	n.parent = parent
	n.side = ns
	parent.setChild(ns, n)

	cursor.node = n
	cursor.idx = idx
	cursor.side = sideBound
	cursor.state = cursorOpened

	t.addSuccessor(n)
	t.fixupAfterInsertion(n, cursor)
}

// addSuccessor wires the successor link of a freshly added leaf n, and
// rewrites an ancestor's successor link if n displaces it as the new
// in-order successor of some node higher in the tree.
func (t *Tree[K, V]) addSuccessor(n *node[K, V]) {
	if n.side == sideRight {
		n.successor = n.parent.successor
		n.parent.successor = n
		return
	}
	n.successor = n.parent
	switch n.parent.side {
	case sideRight:
		n.parent.parent.successor = n
	case sideLeft:
		for a := n.parent.parent; a != nil; a = a.parent {
			if a.successor == n.parent {
				a.successor = n
				break
			}
		}
	}
}

// fixupAfterInsertion walks from a newly added leaf toward the root,
// adjusting balance factors and rotating at most once, stopping as soon
// as the inserted subtree's height change is absorbed.
func (t *Tree[K, V]) fixupAfterInsertion(n *node[K, V], cursor *Cursor[K, V]) {
	delta := n.side.bfcDelta()
	node := n
	for node.parent != nil {
		node = node.parent
		node.bfc += delta
		if node.bfc == 0 {
			return
		}
		if node.bfc < -1 || node.bfc > 1 {
			t.rebalance(node, cursor)
			return
		}
		delta = node.side.bfcDelta()
	}
}
