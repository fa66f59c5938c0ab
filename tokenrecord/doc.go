// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenrecord - the resource token entity and its binary form
//
// a token is packed as fields in struct order: length prefixed strings,
// Varint64 integers, a single sale flag byte, the owner account and the
// count prefixed list of previous owners; the packed form is what the
// Tokens pool stores
package tokenrecord
