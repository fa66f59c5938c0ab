// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/registry"
	"github.com/resourceledger/registryd/rpc/ratelimit"
)

const (
	rateLimitMarket = 200
	rateBurstMarket = 100
)

// Market - type for the RPC
type Market struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

// New - create the market RPC handler
func New(log *logger.L, rgy registry.Registry) *Market {
	return &Market{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		Registry: rgy,
	}
}

// SellArguments - arguments for listing a token for sale
type SellArguments struct {
	TokenId uint64           `json:"tokenId"`
	Owner   *account.Account `json:"owner"`
}

// SellReply - result from sell RPC
type SellReply struct {
	TokenId uint64 `json:"tokenId"`
}

// Sell - list an owned token at its declared value
func (market *Market) Sell(arguments *SellArguments, reply *SellReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.Sell: %+v", arguments)

	if err := market.Registry.PutForSale(arguments.TokenId, arguments.Owner); nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	return nil
}

// CancelArguments - arguments for withdrawing a listing
type CancelArguments struct {
	TokenId uint64           `json:"tokenId"`
	Owner   *account.Account `json:"owner"`
}

// CancelReply - result from cancel RPC
type CancelReply struct {
	TokenId uint64 `json:"tokenId"`
}

// Cancel - withdraw an active listing
func (market *Market) Cancel(arguments *CancelArguments, reply *CancelReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.Cancel: %+v", arguments)

	if err := market.Registry.CancelSale(arguments.TokenId, arguments.Owner); nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	return nil
}

// BuyArguments - arguments for buying a listed token
type BuyArguments struct {
	TokenId uint64           `json:"tokenId"`
	Buyer   *account.Account `json:"buyer"`
	Payment uint64           `json:"payment"`
}

// BuyReply - result from buy RPC
type BuyReply struct {
	TokenId uint64 `json:"tokenId"`
}

// Buy - purchase a listed token with an exact payment
func (market *Market) Buy(arguments *BuyArguments, reply *BuyReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Buyer {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.Buy: %+v", arguments)

	if err := market.Registry.Buy(arguments.TokenId, arguments.Buyer, arguments.Payment); nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	return nil
}
