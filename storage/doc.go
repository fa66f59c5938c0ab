// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
// all within a single LevelDB database
//
//  Tokens:
//    8 byte token id    - packed token record
//
//  OwnerTokens:
//    owner ++ token id  - 8 byte token id (holder index)
//
//  HoldingCount:
//    owner              - 8 byte count of currently held tokens
//
//  Balances:
//    owner              - 8 byte settled funds amount
//
//  Controls:
//    "NID"              - 8 byte next token id
//
// every mutating operation stages its writes in a Transaction; the
// underlying LevelDB batch write makes a Commit all-or-nothing
package storage
