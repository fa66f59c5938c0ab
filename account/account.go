// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/resourceledger/registryd/fault"
)

// supported key algorithms
const (
	ED25519 = 0x01
	// end of list (one greater than last item)
	algorithmLimit = 0x02
)

// miscellaneous constants
const (
	checksumLength = 4
)

// Account - the holder identity
//
// the external representation is Base58(key type byte + public key +
// first four bytes of SHA3-256 checksum)
type Account struct {
	PublicKey []byte
}

// AccountFromBase58 - decode the Base58 representation of an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(accountDecoded) <= 1+checksumLength {
		return nil, fault.InvalidKeyLength
	}

	keyAlgorithm := accountDecoded[0]
	if keyAlgorithm <= 0 || keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	publicKey := accountDecoded[1:checksumStart]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}

	return &Account{
		PublicKey: publicKey,
	}, nil
}

// IsValid - check that the account carries a usable public key
func (account *Account) IsValid() bool {
	return nil != account && ed25519.PublicKeySize == len(account.PublicKey)
}

// Bytes - the key type byte followed by the raw public key
//
// this is the form used for all database keys, it is fixed length so
// accounts can safely be used as key prefixes
func (account *Account) Bytes() []byte {
	buffer := make([]byte, 1, 1+len(account.PublicKey))
	buffer[0] = ED25519
	return append(buffer, account.PublicKey...)
}

// String - the Base58 representation including checksum
func (account Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Equal - compare two accounts
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return bytes.Equal(account.PublicKey, other.PublicKey)
}

// MarshalText - convert an account to its Base58 text form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 text form back to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.PublicKey = a.PublicKey
	return nil
}
