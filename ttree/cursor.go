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

// cursorSide names the placement a Pending cursor refers to: a bound slot
// inside an existing node's window, or a child slot of a node that still
// needs a new leaf. Distinct from nodeSide, which names a live node's
// position in its parent.
type cursorSide int8

const (
	sideBound cursorSide = -1
	cSideLeft cursorSide = 0
	cSideRight cursorSide = 1
)

// cursorState is the cursor's lifecycle stage.
type cursorState int8

const (
	cursorClosed cursorState = iota
	cursorOpened
	cursorPending
)

// Cursor is a stable, pointer-like handle into a Tree. It can name a live
// key (Opened), an insertion point discovered by a failed lookup or a
// just-emptied tree (Pending), or the aftermath of a deletion (Closed).
// A Closed cursor cannot be navigated again; Open, First, Last and Lookup
// each return a fresh cursor.
type Cursor[K any, V any] struct {
	tree  *Tree[K, V]
	node  *node[K, V]
	idx   int
	side  cursorSide
	state cursorState
}

func (t *Tree[K, V]) openOnNode(n *node[K, V], seekEnd bool) *Cursor[K, V] {
	c := &Cursor[K, V]{tree: t, node: n, side: sideBound}
	if n != nil {
		if seekEnd {
			c.idx = n.maxIdx
		} else {
			c.idx = n.minIdx
		}
		c.state = cursorOpened
		return c
	}
	c.idx = firstIdx(t.m)
	c.state = cursorPending
	return c
}

// Open returns a new cursor on the smallest key of the tree's current root
// node, in Opened state if the tree is non-empty or Pending state naming
// the empty-tree insertion point otherwise.
func (t *Tree[K, V]) Open() *Cursor[K, V] {
	return t.openOnNode(t.root, false)
}

// First positions a cursor at the globally smallest key.
func (t *Tree[K, V]) First() *Cursor[K, V] {
	n := t.leftmost(t.root)
	if n == nil {
		if t.root != nil {
			return &Cursor[K, V]{tree: t, node: t.root, idx: t.root.minIdx, side: sideBound, state: cursorOpened}
		}
		return &Cursor[K, V]{tree: t, idx: firstIdx(t.m), side: sideBound, state: cursorPending}
	}
	return &Cursor[K, V]{tree: t, node: n, idx: n.minIdx, side: sideBound, state: cursorOpened}
}

// Last positions a cursor at the globally largest key.
func (t *Tree[K, V]) Last() *Cursor[K, V] {
	n := t.rightmost(t.root)
	if n == nil {
		if t.root != nil {
			return &Cursor[K, V]{tree: t, node: t.root, idx: t.root.maxIdx, side: sideBound, state: cursorOpened}
		}
		return &Cursor[K, V]{tree: t, idx: firstIdx(t.m), side: sideBound, state: cursorPending}
	}
	return &Cursor[K, V]{tree: t, node: n, idx: n.maxIdx, side: sideBound, state: cursorOpened}
}

// State reports the cursor's current lifecycle stage.
func (c *Cursor[K, V]) State() (opened, pending, closed bool) {
	return c.state == cursorOpened, c.state == cursorPending, c.state == cursorClosed
}

// Key returns the key at the cursor's current position. It must only be
// called on an Opened cursor.
func (c *Cursor[K, V]) Key() K {
	return c.tree.keyOf(c.node.items[c.idx])
}

// Item returns the item at the cursor's current position. It must only be
// called on an Opened cursor.
func (c *Cursor[K, V]) Item() V {
	return c.node.items[c.idx]
}

// Next advances the cursor to the next greater key. A Pending cursor is
// first promoted to the nearest real key in the forward direction. Returns
// ErrEndOfIteration once there is no next key.
func (c *Cursor[K, V]) Next() error {
	if c.state == cursorClosed || c.node == nil {
		return ErrEndOfIteration
	}
	if c.state == cursorPending {
		c.state = cursorOpened
		switch {
		case c.side == cSideLeft || c.idx < c.node.minIdx:
			c.side = sideBound
			c.idx = c.node.minIdx
			return nil
		case c.side == sideBound && c.idx <= c.node.maxIdx:
			return nil
		case c.side == cSideRight || c.idx > c.node.maxIdx:
			c.idx = c.node.maxIdx
		}
	}

	c.side = sideBound
	if c.idx == c.node.maxIdx {
		if c.node.successor != nil {
			c.node = c.node.successor
			c.idx = c.node.minIdx
			return nil
		}
		return ErrEndOfIteration
	}
	c.idx++
	return nil
}

// Prev moves the cursor to the next smaller key. A Pending cursor is first
// promoted to the nearest real key in the backward direction. Returns
// ErrEndOfIteration once there is no previous key.
func (c *Cursor[K, V]) Prev() error {
	if c.state == cursorClosed || c.node == nil {
		return ErrEndOfIteration
	}
	if c.state == cursorPending {
		c.state = cursorOpened
		switch {
		case c.side == cSideRight || c.idx > c.node.maxIdx:
			c.side = sideBound
			c.idx = c.node.maxIdx
			return nil
		case c.side == cSideLeft || c.idx < c.node.minIdx:
			c.side = sideBound
			c.idx = c.node.minIdx
		}
	}

	c.side = sideBound
	if c.idx == c.node.minIdx {
		n := c.tree.glb(c.node)
		if n == nil {
			m := c.node
			for m.parent != nil && m.parent.left() == m {
				m = m.parent
			}
			if m.parent == nil {
				return ErrEndOfIteration
			}
			n = m.parent
		}
		c.node = n
		c.idx = n.maxIdx
		return nil
	}
	c.idx--
	return nil
}

// hasMore reports whether the cursor names a live key at its current
// position (Opened state), which the forward iterator adapter in
// iterator.go yields next.
func (c *Cursor[K, V]) hasMore() bool {
	switch c.state {
	case cursorOpened:
		return true
	default:
		return false
	}
}
