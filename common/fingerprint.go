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

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// DigestSize is the byte-size of a Digest.
const DigestSize = 32

// Digest is a fixed-size structural fingerprint, produced by folding a
// SHA3 hash over a sequence of serialized values.
type Digest [DigestSize]byte

// NewDigester creates a digester fed incrementally through Add and
// finalized through Sum. It wraps a fresh Keccak256 hash state, the
// same primitive used elsewhere to fingerprint large structures cheaply.
func NewDigester() *Digester {
	return &Digester{h: sha3.NewLegacyKeccak256()}
}

// Digester accumulates bytes into a running structural digest.
type Digester struct {
	h hash.Hash
}

// Add folds another chunk of bytes into the digest.
func (d *Digester) Add(data []byte) {
	_, _ = d.h.Write(data)
}

// Sum finalizes and returns the accumulated digest without resetting it.
func (d *Digester) Sum() (res Digest) {
	copy(res[:], d.h.Sum(nil))
	return
}

// GetKeccak256Hash computes the Keccak256 digest of a single byte slice.
func GetKeccak256Hash(data []byte) Digest {
	hasher := sha3.NewLegacyKeccak256()
	return GetDigest(hasher, data)
}

// GetDigest computes the digest of the given data using the given hash algorithm.
func GetDigest(h hash.Hash, data []byte) (res Digest) {
	h.Reset()
	h.Write(data)
	copy(res[:], h.Sum(nil)[:])
	return
}
