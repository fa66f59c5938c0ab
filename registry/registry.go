// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the single public entry surface of the ledger
//
// every mutating operation runs to completion under one lock: it is
// staged in a storage transaction and either committed whole or
// aborted with the database untouched; read-only queries share a read
// lock and see committed state only
package registry

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/exchange"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/funds"
	"github.com/resourceledger/registryd/market"
	"github.com/resourceledger/registryd/storage"
	"github.com/resourceledger/registryd/token"
	"github.com/resourceledger/registryd/tokenrecord"
)

// Record - a token together with its ledger id
type Record struct {
	TokenId uint64 `json:"tokenId"`
	tokenrecord.Token
}

// Registry - the public operation surface
type Registry interface {
	CreateToken(name string, resourceType string, value uint64, contentHash string, creator *account.Account) (uint64, error)
	PutForSale(id uint64, caller *account.Account) error
	CancelSale(id uint64, caller *account.Account) error
	Buy(id uint64, buyer *account.Account, payment uint64) error
	Exchange(from []uint64, to []uint64, caller *account.Account) error
	GetAll() ([]Record, error)
	GetMetadata(id uint64) (*Record, error)
	TokensOf(owner *account.Account) ([]Record, error)
	BalanceOf(owner *account.Account) uint64
}

// globals
type registryData struct {
	sync.RWMutex
	log         *logger.L
	lastTime    uint64
	initialised bool
}

// global storage
var globalData registryData

// Initialise - start the registry
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if !storage.IsInitialised() {
		return fault.DatabaseIsNotSet
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")
	globalData.initialised = true
	return nil
}

// Finalise - stop the registry
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}
	globalData.log.Info("shutting down…")
	globalData.initialised = false
}

// Get - access the registry operations
func Get() Registry {
	return &globalData
}

// the single clock for createdAt/lastTransferAt stamps
//
// clamped so the audit trail never steps backwards even if the wall
// clock does; caller must hold the write lock
func (r *registryData) now() uint64 {
	t := uint64(time.Now().UTC().Unix())
	if t < r.lastTime {
		t = r.lastTime
	}
	r.lastTime = t
	return t
}

// run one mutation as an all-or-nothing unit
func (r *registryData) execute(fn func(trx storage.Transaction) error) error {
	r.Lock()
	defer r.Unlock()

	if !r.initialised {
		return fault.NotInitialised
	}

	trx := storage.NewTransaction()
	if err := trx.Begin(); nil != err {
		return err
	}

	if err := fn(trx); nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// CreateToken - append a new token owned by its creator
func (r *registryData) CreateToken(name string, resourceType string, value uint64, contentHash string, creator *account.Account) (uint64, error) {
	if nil == creator || !creator.IsValid() {
		return 0, fault.InvalidOwnerIdentity
	}

	id := uint64(0)
	err := r.execute(func(trx storage.Transaction) error {
		now := r.now()
		tok := &tokenrecord.Token{
			Name:           name,
			ResourceType:   resourceType,
			Value:          value,
			ContentHash:    contentHash,
			Owner:          creator,
			ForSale:        false,
			CreatedAt:      now,
			LastTransferAt: now,
			PreviousOwners: []*account.Account{},
		}
		createdId, err := token.Create(trx, tok)
		if nil != err {
			return err
		}
		id = createdId
		return nil
	})
	if nil != err {
		return 0, err
	}

	r.log.Infof("created token: %d owner: %s", id, creator)
	return id, nil
}

// PutForSale - list a token at its fixed value
func (r *registryData) PutForSale(id uint64, caller *account.Account) error {
	if nil == caller || !caller.IsValid() {
		return fault.InvalidOwnerIdentity
	}
	return r.execute(func(trx storage.Transaction) error {
		return market.PutForSale(trx, id, caller)
	})
}

// CancelSale - withdraw a listing
func (r *registryData) CancelSale(id uint64, caller *account.Account) error {
	if nil == caller || !caller.IsValid() {
		return fault.InvalidOwnerIdentity
	}
	return r.execute(func(trx storage.Transaction) error {
		return market.CancelSale(trx, id, caller)
	})
}

// Buy - purchase a listed token for the exact attached payment
func (r *registryData) Buy(id uint64, buyer *account.Account, payment uint64) error {
	if nil == buyer || !buyer.IsValid() {
		return fault.InvalidOwnerIdentity
	}
	err := r.execute(func(trx storage.Transaction) error {
		return market.Buy(trx, id, buyer, payment, r.now())
	})
	if nil == err {
		r.log.Infof("sold token: %d to: %s for: %d", id, buyer, payment)
	}
	return err
}

// Exchange - barter two token sets between their owners
func (r *registryData) Exchange(from []uint64, to []uint64, caller *account.Account) error {
	if nil == caller || !caller.IsValid() {
		return fault.InvalidOwnerIdentity
	}
	err := r.execute(func(trx storage.Transaction) error {
		return exchange.Exchange(trx, from, to, caller, r.now())
	})
	if nil == err {
		r.log.Infof("exchanged tokens: %v for: %v", from, to)
	}
	return err
}

// GetAll - full snapshot of the ledger in creation order
func (r *registryData) GetAll() ([]Record, error) {
	r.RLock()
	defer r.RUnlock()

	count := token.Count()
	records := make([]Record, 0, count)
	for id := uint64(0); id < count; id += 1 {
		tok, err := token.Get(id)
		if nil != err {
			return nil, err
		}
		records = append(records, Record{TokenId: id, Token: *tok})
	}
	return records, nil
}

// GetMetadata - one token record
func (r *registryData) GetMetadata(id uint64) (*Record, error) {
	r.RLock()
	defer r.RUnlock()

	tok, err := token.Get(id)
	if nil != err {
		return nil, err
	}
	return &Record{TokenId: id, Token: *tok}, nil
}

// TokensOf - current holdings of one account
func (r *registryData) TokensOf(owner *account.Account) ([]Record, error) {
	if nil == owner || !owner.IsValid() {
		return nil, fault.InvalidOwnerIdentity
	}

	r.RLock()
	defer r.RUnlock()

	ids := token.TokensOf(owner)
	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		tok, err := token.Get(id)
		if nil != err {
			return nil, err
		}
		records = append(records, Record{TokenId: id, Token: *tok})
	}
	return records, nil
}

// BalanceOf - settled sale proceeds of one account
func (r *registryData) BalanceOf(owner *account.Account) uint64 {
	r.RLock()
	defer r.RUnlock()
	return funds.BalanceOf(owner)
}
