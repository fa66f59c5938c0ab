// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - the error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine the class of an error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine the class of an error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ExistsError("already initialised")
	AlreadyListedForSale          = ExistsError("token is already listed for sale")
	BalanceOverflow               = ProcessError("settlement balance would overflow")
	CannotDecodeAccount           = RecordError("cannot decode account")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ChecksumMismatch              = ProcessError("checksum mismatch")
	DatabaseIsNotSet              = ProcessError("database is not set")
	DoubleTransactionAttempt      = ProcessError("double transaction attempt")
	DuplicateTokenId              = InvalidError("duplicate token id in selection")
	EmptySelection                = InvalidError("token selection is empty")
	InvalidCount                  = InvalidError("invalid count")
	InvalidIpAddress              = InvalidError("invalid ip Address")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidOwnerIdentity          = InvalidError("invalid owner identity")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	MissingParameters             = LengthError("missing parameters")
	NotInitialised                = NotFoundError("not initialised")
	NotListedForSale              = InvalidError("token is not listed for sale")
	NotTokenOwner                 = InvalidError("caller is not the token owner")
	NotTokenRecord                = RecordError("not a token record")
	OwnershipMismatch             = InvalidError("token is not owned by the required account")
	PaymentMismatch               = InvalidError("payment does not match the token value")
	QuotaExceeded                 = InvalidError("maximum resources reached")
	RateLimiting                  = ProcessError("rate limiting")
	SelfPurchase                  = InvalidError("token is already owned by the buyer")
	TokenIdNotFound               = NotFoundError("token id not found")
	TransactionIsNotInProgress    = ProcessError("transaction is not in progress")
	ValueIsZero                   = InvalidError("token value is zero")
	ValueMismatch                 = InvalidError("aggregate token values are not equal")
	ValueOverflow                 = ProcessError("aggregate token value would overflow")
)
