// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import "golang.org/x/exp/constraints"

// Comparator is an interface for comparing two items, establishing a total
// order over them. Compare returns a negative number if a < b, zero if
// a == b, and a positive number if a > b.
type Comparator[T any] interface {
	Compare(a, b *T) int
}

// Uint32Comparator is a Comparator for uint32 keys.
type Uint32Comparator struct{}

func (c Uint32Comparator) Compare(a, b *uint32) int {
	if *a > *b {
		return 1
	}
	if *a < *b {
		return -1
	}
	return 0
}

// Uint64Comparator is a Comparator for uint64 keys.
type Uint64Comparator struct{}

func (c Uint64Comparator) Compare(a, b *uint64) int {
	if *a > *b {
		return 1
	}
	if *a < *b {
		return -1
	}
	return 0
}

// OrderedComparator is a Comparator for any naturally ordered Go type
// (integers, floats, strings), backed by the built-in <, > operators.
type OrderedComparator[T constraints.Ordered] struct{}

func (c OrderedComparator[T]) Compare(a, b *T) int {
	if *a > *b {
		return 1
	}
	if *a < *b {
		return -1
	}
	return 0
}
