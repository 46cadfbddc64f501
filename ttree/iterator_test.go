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

func TestForwardIterator_VisitsEveryItemInOrder(t *testing.T) {
	tr := newIntTree(t, 4)
	for _, k := range []int{5, 1, 4, 2, 3} {
		if err := tr.Insert(k); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
	}

	var it common.Iterator[int] = NewForwardIterator[int, int](tr.First())
	var got []int
	for it.HasNext() {
		got = append(got, it.Next())
	}

	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestForwardIterator_EmptyTreeHasNoNext(t *testing.T) {
	tr := newIntTree(t, 4)
	it := NewForwardIterator[int, int](tr.First())
	if it.HasNext() {
		t.Fatalf("iterator over empty tree should have no next item")
	}
}
