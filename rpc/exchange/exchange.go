// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/registry"
	"github.com/resourceledger/registryd/rpc/ratelimit"
)

const (
	rateLimitExchange = 100
	rateBurstExchange = 50

	// largest side of a single barter request
	maximumSelectionCount = 100
)

// Exchange - type for the RPC
type Exchange struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

// New - create the exchange RPC handler
func New(log *logger.L, rgy registry.Registry) *Exchange {
	return &Exchange{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitExchange, rateBurstExchange),
		Registry: rgy,
	}
}

// TokensArguments - the two sides of a barter swap
type TokensArguments struct {
	From   []uint64         `json:"from"`
	To     []uint64         `json:"to"`
	Caller *account.Account `json:"caller"`
}

// TokensReply - result from exchange RPC
type TokensReply struct {
	Exchanged int `json:"exchanged"`
}

// Tokens - atomically swap two equal valued token selections
func (exchange *Exchange) Tokens(arguments *TokensArguments, reply *TokensReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	count := len(arguments.From) + len(arguments.To)
	if 0 == count {
		// empty requests are limited singly, the registry rejects them
		if err := ratelimit.Limit(exchange.Limiter); nil != err {
			return err
		}
	} else if err := ratelimit.LimitN(exchange.Limiter, count, 2*maximumSelectionCount); nil != err {
		return err
	}

	if nil == arguments.Caller {
		return fault.MissingParameters
	}

	exchange.Log.Infof("Exchange.Tokens: %+v", arguments)

	if err := exchange.Registry.Exchange(arguments.From, arguments.To, arguments.Caller); nil != err {
		return err
	}

	reply.Exchanged = count
	return nil
}
