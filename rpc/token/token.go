// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/registry"
	"github.com/resourceledger/registryd/rpc/ratelimit"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100

	// full ledger listings are expensive, serve a short lived snapshot;
	// all mutations, creation included, become visible only when the
	// window expires
	snapshotKey    = "all"
	snapshotExpiry = 2 * time.Second
)

// Token - type for the RPC
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
	snapshot *gocache.Cache
}

// New - create the token RPC handler
func New(log *logger.L, rgy registry.Registry) *Token {
	return &Token{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitToken, rateBurstToken),
		Registry: rgy,
		snapshot: gocache.New(snapshotExpiry, 2*snapshotExpiry),
	}
}

// CreateArguments - arguments for creating a token
type CreateArguments struct {
	Name         string           `json:"name"`
	ResourceType string           `json:"resourceType"`
	Value        uint64           `json:"value"`
	ContentHash  string           `json:"contentHash"`
	Owner        *account.Account `json:"owner"`
}

// CreateReply - result from create RPC
type CreateReply struct {
	TokenId uint64 `json:"tokenId"`
}

// Create - mint a new token owned by the caller
func (token *Token) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	log := token.Log
	log.Infof("Token.Create: %+v", arguments)

	id, err := token.Registry.CreateToken(
		arguments.Name,
		arguments.ResourceType,
		arguments.Value,
		arguments.ContentHash,
		arguments.Owner,
	)
	if nil != err {
		return err
	}

	reply.TokenId = id
	return nil
}

// MetadataArguments - arguments for a metadata request
type MetadataArguments struct {
	TokenId uint64 `json:"tokenId"`
}

// Metadata - fetch the full record of a single token
func (token *Token) Metadata(arguments *MetadataArguments, reply *registry.Record) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	record, err := token.Registry.GetMetadata(arguments.TokenId)
	if nil != err {
		return err
	}

	*reply = *record
	return nil
}

// ListArguments - empty arguments for a full listing
type ListArguments struct{}

// ListReply - every token in the ledger, creation order
type ListReply struct {
	Tokens []registry.Record `json:"tokens"`
	Count  int               `json:"count"`
}

// List - return all tokens ever created
func (token *Token) List(_ *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil != token.snapshot {
		if cached, ok := token.snapshot.Get(snapshotKey); ok {
			records := cached.([]registry.Record)
			reply.Tokens = records
			reply.Count = len(records)
			return nil
		}
	}

	records, err := token.Registry.GetAll()
	if nil != err {
		return err
	}

	if nil != token.snapshot {
		token.snapshot.Set(snapshotKey, records, gocache.DefaultExpiration)
	}

	reply.Tokens = records
	reply.Count = len(records)
	return nil
}
