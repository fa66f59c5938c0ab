// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - the single source of truth for token records
//
// owns the append-only token collection and the holder index; the
// engines and the registry facade mutate it only through a storage
// transaction so that every public operation is all-or-nothing
package token

import (
	"encoding/binary"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/storage"
	"github.com/resourceledger/registryd/tokenrecord"
)

// Controls pool key for the next token id
var nextIdKey = []byte("NID")

// TokenId - database key for a token id
func TokenId(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// holder index key: owner bytes ++ token id
func ownerTokenKey(owner *account.Account, id uint64) []byte {
	ownerBytes := owner.Bytes()
	key := make([]byte, 0, len(ownerBytes)+8)
	key = append(key, ownerBytes...)
	return append(key, TokenId(id)...)
}

// Create - append a new token and index it for its creator
//
// the quota is checked before anything is staged, so a rejection leaves
// the transaction untouched; returns the new token id
func Create(trx storage.Transaction, tok *tokenrecord.Token) (uint64, error) {
	if nil == tok.Owner || !tok.Owner.IsValid() {
		return 0, fault.InvalidOwnerIdentity
	}

	if err := CheckCanCreate(trx, tok.Owner); nil != err {
		return 0, err
	}

	packed, err := tok.Pack()
	if nil != err {
		return 0, err
	}

	id, _ := trx.GetN(storage.Pool.Controls, nextIdKey)

	trx.Put(storage.Pool.Tokens, TokenId(id), packed)
	trx.Put(storage.Pool.OwnerTokens, ownerTokenKey(tok.Owner, id), TokenId(id))

	count, _ := trx.GetN(storage.Pool.HoldingCount, tok.Owner.Bytes())
	trx.PutN(storage.Pool.HoldingCount, tok.Owner.Bytes(), count+1)

	trx.PutN(storage.Pool.Controls, nextIdKey, id+1)

	return id, nil
}

// Count - the number of tokens ever created
//
// ids are contiguous from zero, so this is also one past the highest id
func Count() uint64 {
	count, _ := storage.Pool.Controls.GetN(nextIdKey)
	return count
}

// Get - read a token outside any transaction
func Get(id uint64) (*tokenrecord.Token, error) {
	packed := storage.Pool.Tokens.Get(TokenId(id))
	if nil == packed {
		return nil, fault.TokenIdNotFound
	}
	return tokenrecord.Packed(packed).Unpack()
}

// GetForUpdate - read a token through a transaction's staging overlay
func GetForUpdate(trx storage.Transaction, id uint64) (*tokenrecord.Token, error) {
	packed := trx.Get(storage.Pool.Tokens, TokenId(id))
	if nil == packed {
		return nil, fault.TokenIdNotFound
	}
	return tokenrecord.Packed(packed).Unpack()
}

// TransferOwnership - the single ownership change primitive
//
// appends the old owner to the provenance list, clears any sale flag,
// stamps the transfer time and moves the holder index entry; callers
// must already have validated authorization and invariants
func TransferOwnership(trx storage.Transaction, id uint64, tok *tokenrecord.Token, newOwner *account.Account, now uint64) error {
	previousOwner := tok.Owner

	tok.PreviousOwners = append(tok.PreviousOwners, previousOwner)
	tok.Owner = newOwner
	tok.ForSale = false
	tok.LastTransferAt = now

	packed, err := tok.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Tokens, TokenId(id), packed)

	// holder index: remove from the old owner, add to the new
	trx.Delete(storage.Pool.OwnerTokens, ownerTokenKey(previousOwner, id))
	trx.Put(storage.Pool.OwnerTokens, ownerTokenKey(newOwner, id), TokenId(id))

	oldCount, _ := trx.GetN(storage.Pool.HoldingCount, previousOwner.Bytes())
	if oldCount <= 1 {
		trx.Delete(storage.Pool.HoldingCount, previousOwner.Bytes())
	} else {
		trx.PutN(storage.Pool.HoldingCount, previousOwner.Bytes(), oldCount-1)
	}

	newCount, _ := trx.GetN(storage.Pool.HoldingCount, newOwner.Bytes())
	trx.PutN(storage.Pool.HoldingCount, newOwner.Bytes(), newCount+1)

	return nil
}

// TokensOf - current holdings of one account, in ascending id order
func TokensOf(owner *account.Account) []uint64 {
	elements := storage.Pool.OwnerTokens.Fetch(owner.Bytes())
	ids := make([]uint64, 0, len(elements))
	for _, e := range elements {
		if 8 != len(e.Value) {
			continue
		}
		ids = append(ids, binary.BigEndian.Uint64(e.Value))
	}
	return ids
}

// Holdings - how many tokens an account currently holds
func Holdings(owner *account.Account) uint64 {
	count, _ := storage.Pool.HoldingCount.GetN(owner.Bytes())
	return count
}
