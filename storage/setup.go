// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/resourceledger/registryd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Tokens       *PoolHandle `prefix:"T"`
	OwnerTokens  *PoolHandle `prefix:"D"`
	HoldingCount *PoolHandle `prefix:"C"`
	Balances     *PoolHandle `prefix:"F"`
	Controls     *PoolHandle `prefix:"N"`
	TestData     *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db *leveldb.DB
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, err := leveldb.OpenFile(database, nil)
	if nil != err {
		return err
	}

	// ensure no database downgrade
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		versionValue = make([]byte, 8)
		binary.BigEndian.PutUint64(versionValue, currentDBVersion)
		err = db.Put(versionKey, versionValue, nil)
		if nil != err {
			_ = db.Close()
			return err
		}
	} else if nil != err {
		_ = db.Close()
		return err
	} else {
		version := binary.BigEndian.Uint64(versionValue)
		if currentDBVersion != version {
			_ = db.Close()
			return fmt.Errorf("incompatible database version: %d  current: %d", version, currentDBVersion)
		}
	}

	poolData.db = db

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate its prefix tag
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			_ = db.Close()
			poolData.db = nil
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte{prefix + 1}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}
	_ = poolData.db.Close()
	poolData.db = nil
}

// IsInitialised - check the database is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}
