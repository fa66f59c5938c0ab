// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package funds - settlement balances for completed sales
//
// the attached payment of a successful purchase is credited to the
// seller inside the same transaction that moves the token, so funds
// and ownership can never diverge; there is no withdrawal surface, the
// wallet side of settlement is outside the registry
package funds

import (
	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/storage"
)

// Credit - add a settled amount to an account's balance
func Credit(trx storage.Transaction, owner *account.Account, amount uint64) error {
	balance, _ := trx.GetN(storage.Pool.Balances, owner.Bytes())
	if balance+amount < balance {
		return fault.BalanceOverflow
	}
	trx.PutN(storage.Pool.Balances, owner.Bytes(), balance+amount)
	return nil
}

// BalanceOf - the settled funds of one account
func BalanceOf(owner *account.Account) uint64 {
	balance, _ := storage.Pool.Balances.GetN(owner.Bytes())
	return balance
}
