// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord

import (
	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/util"
)

// Packed - the on-disk form of a token record
type Packed []byte

// Token - the core registry entity
//
// Name, ResourceType, Value and ContentHash are fixed at creation;
// Owner, ForSale, LastTransferAt and PreviousOwners change only through
// an ownership transfer or a listing state change
type Token struct {
	Name           string             `json:"name"`
	ResourceType   string             `json:"resourceType"`
	Value          uint64             `json:"value"`
	ContentHash    string             `json:"contentHash"`
	Owner          *account.Account   `json:"owner"`
	ForSale        bool               `json:"isForSale"`
	CreatedAt      uint64             `json:"createdAt"`
	LastTransferAt uint64             `json:"lastTransferAt"`
	PreviousOwners []*account.Account `json:"previousOwners"`
}

// Pack - concatenate token fields into their binary form
func (token *Token) Pack() (Packed, error) {
	if nil == token.Owner || !token.Owner.IsValid() {
		return nil, fault.InvalidOwnerIdentity
	}

	message := appendString(Packed{}, token.Name)
	message = appendString(message, token.ResourceType)
	message = appendUint64(message, token.Value)
	message = appendString(message, token.ContentHash)
	message = appendAccount(message, token.Owner)
	if token.ForSale {
		message = append(message, byte(1))
	} else {
		message = append(message, byte(0))
	}
	message = appendUint64(message, token.CreatedAt)
	message = appendUint64(message, token.LastTransferAt)

	message = appendUint64(message, uint64(len(token.PreviousOwners)))
	for _, previous := range token.PreviousOwners {
		if nil == previous || !previous.IsValid() {
			return nil, fault.InvalidOwnerIdentity
		}
		message = appendAccount(message, previous)
	}

	return message, nil
}

// Unpack - decode the binary form back into a token
func (record Packed) Unpack() (*Token, error) {
	token := &Token{}
	buffer := []byte(record)

	name, buffer, err := splitString(buffer)
	if nil != err {
		return nil, err
	}
	token.Name = name

	resourceType, buffer, err := splitString(buffer)
	if nil != err {
		return nil, err
	}
	token.ResourceType = resourceType

	value, buffer, err := splitUint64(buffer)
	if nil != err {
		return nil, err
	}
	token.Value = value

	contentHash, buffer, err := splitString(buffer)
	if nil != err {
		return nil, err
	}
	token.ContentHash = contentHash

	owner, buffer, err := splitAccount(buffer)
	if nil != err {
		return nil, err
	}
	token.Owner = owner

	if 0 == len(buffer) {
		return nil, fault.NotTokenRecord
	}
	token.ForSale = 0 != buffer[0]
	buffer = buffer[1:]

	createdAt, buffer, err := splitUint64(buffer)
	if nil != err {
		return nil, err
	}
	token.CreatedAt = createdAt

	lastTransferAt, buffer, err := splitUint64(buffer)
	if nil != err {
		return nil, err
	}
	token.LastTransferAt = lastTransferAt

	previousCount, buffer, err := splitUint64(buffer)
	if nil != err {
		return nil, err
	}
	token.PreviousOwners = make([]*account.Account, 0, previousCount)
	for i := uint64(0); i < previousCount; i += 1 {
		var previous *account.Account
		previous, buffer, err = splitAccount(buffer)
		if nil != err {
			return nil, err
		}
		token.PreviousOwners = append(token.PreviousOwners, previous)
	}

	if 0 != len(buffer) {
		return nil, fault.NotTokenRecord
	}
	return token, nil
}

// Copy - deep copy of a token
//
// used to hand out records without exposing internal state to callers
func (token *Token) Copy() *Token {
	result := *token
	result.PreviousOwners = make([]*account.Account, len(token.PreviousOwners))
	copy(result.PreviousOwners, token.PreviousOwners)
	return &result
}

// packing helpers
// ---------------

func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

func appendAccount(buffer Packed, address *account.Account) Packed {
	data := address.Bytes()
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// unpacking helpers, each returns the remaining buffer
// ----------------------------------------------------

func splitUint64(buffer []byte) (uint64, []byte, error) {
	value, used := util.FromVarint64(buffer)
	if 0 == used {
		return 0, nil, fault.NotTokenRecord
	}
	return value, buffer[used:], nil
}

func splitString(buffer []byte) (string, []byte, error) {
	length, buffer, err := splitUint64(buffer)
	if nil != err {
		return "", nil, err
	}
	if uint64(len(buffer)) < length {
		return "", nil, fault.NotTokenRecord
	}
	return string(buffer[:length]), buffer[length:], nil
}

func splitAccount(buffer []byte) (*account.Account, []byte, error) {
	length, buffer, err := splitUint64(buffer)
	if nil != err {
		return nil, nil, err
	}
	if uint64(len(buffer)) < length || length < 2 {
		return nil, nil, fault.NotTokenRecord
	}
	data := buffer[:length]
	if account.ED25519 != data[0] {
		return nil, nil, fault.InvalidKeyType
	}
	publicKey := make([]byte, length-1)
	copy(publicKey, data[1:])
	owner := &account.Account{PublicKey: publicKey}
	if !owner.IsValid() {
		return nil, nil, fault.InvalidKeyLength
	}
	return owner, buffer[length:], nil
}
