// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/storage"
)

// MaximumHoldings - the creation quota
//
// a holder may own at most this many tokens at the moment a new token
// is created; the cap does not block growth through purchase or
// exchange and a holder who transfers tokens away may create again
const MaximumHoldings = 4

// CheckCanCreate - enforce the creation quota for one account
func CheckCanCreate(trx storage.Transaction, owner *account.Account) error {
	count, _ := trx.GetN(storage.Pool.HoldingCount, owner.Bytes())
	if count >= MaximumHoldings {
		return fault.QuotaExceeded
	}
	return nil
}
