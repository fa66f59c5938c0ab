// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package exchange - atomic N-for-M barter between two holders
//
// no payment moves: the swap is gated only by exact aggregate value
// parity across the two sides; validation of every token completes
// before the first transfer is staged
package exchange

import (
	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/storage"
	"github.com/resourceledger/registryd/token"
	"github.com/resourceledger/registryd/tokenrecord"
)

// one side of the barter after validation
type side struct {
	owner  *account.Account
	tokens []*tokenrecord.Token
	total  uint64
}

// Exchange - swap two disjoint token sets between their owners
//
// every id in `from` must belong to the caller and every id in `to`
// to one single counterparty; the aggregate values of the two sides
// must be exactly equal
func Exchange(trx storage.Transaction, from []uint64, to []uint64, caller *account.Account, now uint64) error {
	if 0 == len(from) || 0 == len(to) {
		return fault.EmptySelection
	}

	seen := make(map[uint64]struct{}, len(from)+len(to))
	for _, id := range append(append([]uint64{}, from...), to...) {
		if _, ok := seen[id]; ok {
			return fault.DuplicateTokenId
		}
		seen[id] = struct{}{}
	}

	offered, err := validateSide(trx, from, caller)
	if nil != err {
		return err
	}

	requested, err := validateSide(trx, to, nil)
	if nil != err {
		return err
	}
	if requested.owner.Equal(caller) {
		return fault.OwnershipMismatch
	}

	if offered.total != requested.total {
		return fault.ValueMismatch
	}

	// all validated: apply every transfer as one staged unit
	for i, id := range from {
		if err := token.TransferOwnership(trx, id, offered.tokens[i], requested.owner, now); nil != err {
			return err
		}
	}
	for i, id := range to {
		if err := token.TransferOwnership(trx, id, requested.tokens[i], caller, now); nil != err {
			return err
		}
	}
	return nil
}

// check every token exists and shares a single owner, summing values
//
// a nil requiredOwner means: adopt the owner of the first token
func validateSide(trx storage.Transaction, ids []uint64, requiredOwner *account.Account) (*side, error) {
	result := &side{
		owner:  requiredOwner,
		tokens: make([]*tokenrecord.Token, 0, len(ids)),
	}

	for _, id := range ids {
		tok, err := token.GetForUpdate(trx, id)
		if nil != err {
			return nil, err
		}

		if nil == result.owner {
			result.owner = tok.Owner
		} else if !tok.Owner.Equal(result.owner) {
			return nil, fault.OwnershipMismatch
		}

		total := result.total + tok.Value
		if total < result.total {
			return nil, fault.ValueOverflow
		}
		result.total = total

		result.tokens = append(result.tokens, tok)
	}
	return result, nil
}
