// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ttree implements an in-memory, ordered T*-tree index: a balanced
// search tree whose nodes each hold a small sorted array of keys rather
// than a single key, reducing pointer-chasing overhead relative to a
// classical AVL tree while keeping O(log N) lookup and an in-order
// successor chain for range scans.
package ttree

import "github.com/ttreedb/ttree/common"

// Bounds and default for the keys-per-node configuration, matching
// TNODE_ITEMS_MIN / TNODE_ITEMS_MAX / TTREE_DEFAULT_NUMKEYS of the reference
// T*-tree implementation.
const (
	MinKeysPerNode     = 2
	MaxKeysPerNode     = 4096
	DefaultKeysPerNode = 8
)

// Tree is an in-memory ordered index of values of type V, keyed by K.
// It is not safe for concurrent use without external synchronization.
type Tree[K any, V any] struct {
	root   *node[K, V]
	m      int
	unique bool
	cmp    common.Comparator[K]
	keyOf  func(V) K
}

// New creates an empty Tree holding up to m keys per node, enforcing key
// uniqueness when unique is true, ordering keys with cmp, and deriving an
// item's key through keyOf.
func New[K any, V any](m int, unique bool, cmp common.Comparator[K], keyOf func(V) K) (*Tree[K, V], error) {
	if m < MinKeysPerNode || m > MaxKeysPerNode || cmp == nil || keyOf == nil {
		return nil, ErrInvalidArgument
	}
	return &Tree[K, V]{m: m, unique: unique, cmp: cmp, keyOf: keyOf}, nil
}

// Destroy drops the tree's root reference. The node graph it pointed to
// becomes unreachable in one step and is reclaimed by the garbage
// collector; there is no walk over the successor chain to perform.
func (t *Tree[K, V]) Destroy() {
	t.root = nil
}

// IsEmpty reports whether the tree holds no items.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

func (t *Tree[K, V]) compare(a, b K) int {
	return t.cmp.Compare(&a, &b)
}

func (t *Tree[K, V]) leftmost(n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left() != nil {
		n = n.left()
	}
	return n
}

func (t *Tree[K, V]) rightmost(n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right() != nil {
		n = n.right()
	}
	return n
}

// glb returns the greatest-lower-bound node of n: the rightmost node of its
// left subtree, or nil if n has no left child.
func (t *Tree[K, V]) glb(n *node[K, V]) *node[K, V] {
	return t.rightmost(n.left())
}
