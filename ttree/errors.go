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

// Sentinel errors returned by Tree and Cursor operations. They are declared
// as common.ConstError values so callers can compare them with errors.Is,
// including through fmt.Errorf("%w: ...", ...) wrapping.
const (
	// ErrInvalidArgument is returned by New when the configuration given to
	// it is not usable (keys-per-node out of range, nil comparator or key
	// accessor).
	ErrInvalidArgument = common.ConstError("ttree: invalid argument")

	// ErrNotFound is returned by Delete and Replace when no item with the
	// requested key is present in the tree. Lookup reports a miss through
	// its boolean result instead.
	ErrNotFound = common.ConstError("ttree: key not found")

	// ErrDuplicateKey is returned by Insert when the tree requires unique
	// keys and an item with an equal key is already stored.
	ErrDuplicateKey = common.ConstError("ttree: duplicate key")

	// ErrEndOfIteration is returned by Cursor.Next and Cursor.Prev once the
	// cursor has been advanced past the last, or before the first, key.
	ErrEndOfIteration = common.ConstError("ttree: end of iteration")
)
