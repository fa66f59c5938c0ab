// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/registry"
	"github.com/resourceledger/registryd/rpc/ratelimit"
)

const (
	rateLimitOwner = 200
	rateBurstOwner = 100
)

// Owner - type for the RPC
type Owner struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

// New - create the owner RPC handler
func New(log *logger.L, rgy registry.Registry) *Owner {
	return &Owner{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Registry: rgy,
	}
}

// TokensArguments - arguments for a holdings request
type TokensArguments struct {
	Owner *account.Account `json:"owner"`
}

// TokensReply - all tokens currently held by one account
type TokensReply struct {
	Tokens []registry.Record `json:"tokens"`
	Count  int               `json:"count"`
}

// Tokens - list the tokens held by an account
func (owner *Owner) Tokens(arguments *TokensArguments, reply *TokensReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	records, err := owner.Registry.TokensOf(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Tokens = records
	reply.Count = len(records)
	return nil
}

// BalanceArguments - arguments for a balance request
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
}

// BalanceReply - accumulated sale proceeds of one account
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Balance - report the sale proceeds credited to an account
func (owner *Owner) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	reply.Balance = owner.Registry.BalanceOf(arguments.Owner)
	return nil
}
