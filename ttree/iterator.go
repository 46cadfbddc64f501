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

import "github.com/ttreedb/ttree/common"

// ForwardIterator adapts a Cursor to the corpus-wide common.Iterator[V]
// convention (HasNext/Next), for callers that compose against that
// contract rather than against Cursor's own richer, error-returning API.
// It is a thin view over Cursor.Next, not a second traversal algorithm.
type ForwardIterator[K any, V any] struct {
	cursor *Cursor[K, V]
	done   bool
}

var _ common.Iterator[int] = (*ForwardIterator[int, int])(nil)

// NewForwardIterator wraps an already-positioned cursor. The iterator
// yields items starting at the cursor's current position, inclusive.
func NewForwardIterator[K any, V any](c *Cursor[K, V]) *ForwardIterator[K, V] {
	return &ForwardIterator[K, V]{cursor: c}
}

// HasNext reports whether Next would yield another item.
func (it *ForwardIterator[K, V]) HasNext() bool {
	return !it.done && it.cursor.hasMore()
}

// Next returns the item at the iterator's current position and advances it.
func (it *ForwardIterator[K, V]) Next() V {
	item := it.cursor.Item()
	if err := it.cursor.Next(); err != nil {
		it.done = true
	}
	return item
}
