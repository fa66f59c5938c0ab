// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/resourceledger/registryd/fault"
)

// Transaction - staged all-or-nothing database update
//
// writes are collected in a batch and become visible to later reads in
// the same transaction through a staging overlay; nothing reaches the
// database until Commit, which is a single atomic batch write
type Transaction interface {
	Begin() error
	Put(pool *PoolHandle, key []byte, value []byte)
	PutN(pool *PoolHandle, key []byte, value uint64)
	Delete(pool *PoolHandle, key []byte)
	Get(pool *PoolHandle, key []byte) []byte
	GetN(pool *PoolHandle, key []byte) (uint64, bool)
	Has(pool *PoolHandle, key []byte) bool
	Commit() error
	Abort()
}

// a staged write, deleted takes precedence over value
type stagedUpdate struct {
	deleted bool
	value   []byte
}

type transaction struct {
	sync.Mutex
	inUse  bool
	batch  *leveldb.Batch
	staged map[string]stagedUpdate
}

// NewTransaction - create an empty transaction
func NewTransaction() Transaction {
	return &transaction{
		batch:  new(leveldb.Batch),
		staged: make(map[string]stagedUpdate),
	}
}

// Begin - mark the transaction as in progress
func (trx *transaction) Begin() error {
	trx.Lock()
	defer trx.Unlock()

	if trx.inUse {
		return fault.DoubleTransactionAttempt
	}
	trx.inUse = true
	return nil
}

// Put - stage a key/value write
func (trx *transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	prefixedKey := pool.prefixKey(key)
	staged := make([]byte, len(value))
	copy(staged, value)
	trx.staged[string(prefixedKey)] = stagedUpdate{value: staged}
	trx.batch.Put(prefixedKey, value)
}

// PutN - stage a uint64 write as an 8 byte big endian record
func (trx *transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	trx.Put(pool, key, buffer)
}

// Delete - stage a key removal
func (trx *transaction) Delete(pool *PoolHandle, key []byte) {
	prefixedKey := pool.prefixKey(key)
	trx.staged[string(prefixedKey)] = stagedUpdate{deleted: true}
	trx.batch.Delete(prefixedKey)
}

// Get - read through the staging overlay, falling back to the database
func (trx *transaction) Get(pool *PoolHandle, key []byte) []byte {
	prefixedKey := pool.prefixKey(key)
	if staged, ok := trx.staged[string(prefixedKey)]; ok {
		if staged.deleted {
			return nil
		}
		return staged.value
	}
	return pool.Get(key)
}

// GetN - read a uint64 through the staging overlay
func (trx *transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	buffer := trx.Get(pool, key)
	if nil == buffer || len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - existence check through the staging overlay
func (trx *transaction) Has(pool *PoolHandle, key []byte) bool {
	prefixedKey := pool.prefixKey(key)
	if staged, ok := trx.staged[string(prefixedKey)]; ok {
		return !staged.deleted
	}
	return pool.Has(key)
}

// Commit - apply all staged writes as one atomic batch
func (trx *transaction) Commit() error {
	trx.Lock()
	defer trx.Unlock()

	if !trx.inUse {
		return fault.TransactionIsNotInProgress
	}

	poolData.RLock()
	db := poolData.db
	poolData.RUnlock()
	if nil == db {
		return fault.DatabaseIsNotSet
	}

	err := db.Write(trx.batch, nil)
	if nil != err {
		return err
	}
	trx.reset()
	return nil
}

// Abort - discard all staged writes
func (trx *transaction) Abort() {
	trx.Lock()
	defer trx.Unlock()
	trx.reset()
}

// caller must hold the lock
func (trx *transaction) reset() {
	trx.batch.Reset()
	trx.staged = make(map[string]stagedUpdate)
	trx.inUse = false
}
