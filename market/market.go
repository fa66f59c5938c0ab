// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - listing state transitions and the buy protocol
//
// all checks run against the transaction's staged state before any
// mutation, so a failed call stages nothing; the caller decides whether
// to commit
package market

import (
	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/funds"
	"github.com/resourceledger/registryd/storage"
	"github.com/resourceledger/registryd/token"
)

// PutForSale - mark a token available for direct purchase at its value
func PutForSale(trx storage.Transaction, id uint64, caller *account.Account) error {
	tok, err := token.GetForUpdate(trx, id)
	if nil != err {
		return err
	}

	if !tok.Owner.Equal(caller) {
		return fault.NotTokenOwner
	}
	if 0 == tok.Value {
		return fault.ValueIsZero
	}
	if tok.ForSale {
		return fault.AlreadyListedForSale
	}

	tok.ForSale = true
	packed, err := tok.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Tokens, token.TokenId(id), packed)
	return nil
}

// CancelSale - withdraw a listing
func CancelSale(trx storage.Transaction, id uint64, caller *account.Account) error {
	tok, err := token.GetForUpdate(trx, id)
	if nil != err {
		return err
	}

	if !tok.Owner.Equal(caller) {
		return fault.NotTokenOwner
	}
	if !tok.ForSale {
		return fault.NotListedForSale
	}

	tok.ForSale = false
	packed, err := tok.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Tokens, token.TokenId(id), packed)
	return nil
}

// Buy - settle the attached payment and transfer ownership
//
// the payment must equal the token value exactly: overpayment is
// rejected as well, silently keeping a buyer's excess would be fund
// loss; credit and transfer are staged in the same transaction so a
// buyer can never receive a token without the seller being paid
func Buy(trx storage.Transaction, id uint64, buyer *account.Account, payment uint64, now uint64) error {
	tok, err := token.GetForUpdate(trx, id)
	if nil != err {
		return err
	}

	if !tok.ForSale {
		return fault.NotListedForSale
	}
	if tok.Owner.Equal(buyer) {
		return fault.SelfPurchase
	}
	if payment != tok.Value {
		return fault.PaymentMismatch
	}

	if err := funds.Credit(trx, tok.Owner, payment); nil != err {
		return err
	}
	return token.TransferOwnership(trx, id, tok, buyer, now)
}
