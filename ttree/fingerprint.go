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

// Fingerprint folds a Keccak digest over every item in the tree, visited in
// key order through the successor chain, using encode to turn each item into
// its canonical byte representation. Two trees holding the same items under
// the same encoding always produce the same Fingerprint regardless of the
// sequence of insertions and deletions that built them.
func (t *Tree[K, V]) Fingerprint(encode func(V) []byte) common.Digest {
	d := common.NewDigester()
	for n := t.leftmost(t.root); n != nil; n = n.successor {
		for i := n.minIdx; i <= n.maxIdx; i++ {
			d.Add(encode(n.items[i]))
		}
	}
	return d.Sum()
}
