// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/registry"
	"github.com/resourceledger/registryd/token"
)

// full ledger state for before/after comparisons
type ledgerState struct {
	records  []registry.Record
	balances map[string]uint64
}

func snapshot(t *testing.T, r registry.Registry, accounts ...*account.Account) ledgerState {
	records, err := r.GetAll()
	assert.Nil(t, err, "snapshot error")

	balances := make(map[string]uint64)
	for _, a := range accounts {
		balances[a.String()] = r.BalanceOf(a)
	}
	return ledgerState{records: records, balances: balances}
}

func assertUnchanged(t *testing.T, before ledgerState, after ledgerState) {
	if !reflect.DeepEqual(before.records, after.records) {
		t.Errorf("failed call modified the ledger\nbefore: %+v\nafter:  %+v", before.records, after.records)
	}
	if !reflect.DeepEqual(before.balances, after.balances) {
		t.Errorf("failed call modified balances\nbefore: %v\nafter:  %v", before.balances, after.balances)
	}
}

func TestCreateToken(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa1)

	id, err := r.CreateToken("Gold", "Metal", 10, "hash123", alice)
	assert.Nil(t, err, "create error")
	assert.Equal(t, uint64(0), id, "wrong first id")

	all, err := r.GetAll()
	assert.Nil(t, err, "get all error")
	assert.Equal(t, 1, len(all), "wrong token count")
	assert.Equal(t, "Gold", all[0].Name, "wrong name")
	assert.Equal(t, "Metal", all[0].ResourceType, "wrong resource type")
	assert.Equal(t, "hash123", all[0].ContentHash, "wrong content hash")
	assert.True(t, all[0].Owner.Equal(alice), "wrong owner")
	assert.False(t, all[0].ForSale, "new token marked for sale")
	assert.Equal(t, all[0].CreatedAt, all[0].LastTransferAt, "creation stamps differ")
	assert.Equal(t, 0, len(all[0].PreviousOwners), "new token has provenance")

	_, err = r.CreateToken("x", "y", 1, "h", nil)
	assert.Equal(t, fault.InvalidOwnerIdentity, err, "nil creator accepted")
}

func TestGetMetadata(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa2)

	id, err := r.CreateToken("Diamond", "Gem", 20, "hashXYZ", alice)
	assert.Nil(t, err, "create error")

	record, err := r.GetMetadata(id)
	assert.Nil(t, err, "metadata error")
	assert.Equal(t, id, record.TokenId, "wrong id")
	assert.Equal(t, "Diamond", record.Name, "wrong name")

	_, err = r.GetMetadata(42)
	assert.Equal(t, fault.TokenIdNotFound, err, "missing token not detected")
}

func TestCreationQuota(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa3)
	bob := makeAccount(0xb3)

	for i := 0; i < token.MaximumHoldings; i += 1 {
		_, err := r.CreateToken("Token", "Type", 10, "hash", alice)
		assert.Nil(t, err, "create %d error", i)
	}

	before := snapshot(t, r, alice, bob)
	_, err := r.CreateToken("Token 5", "Type", 10, "hash", alice)
	assert.Equal(t, fault.QuotaExceeded, err, "quota not enforced")
	assertUnchanged(t, before, snapshot(t, r, alice, bob))

	// selling one frees a creation slot
	assert.Nil(t, r.PutForSale(0, alice), "list error")
	assert.Nil(t, r.Buy(0, bob, 10), "buy error")

	_, err = r.CreateToken("Token 5", "Type", 10, "hash", alice)
	assert.Nil(t, err, "create after selling down error")

	// the quota binds creation only: a holder may exceed it by buying
	carol := makeAccount(0xc3)
	for i := 0; i < token.MaximumHoldings; i += 1 {
		id, err := r.CreateToken("B", "Type", 5, "hash", bob)
		assert.Nil(t, err, "create error")
		assert.Nil(t, r.PutForSale(id, bob), "list error")
		assert.Nil(t, r.Buy(id, carol, 5), "buy error")
	}
	assert.Nil(t, r.PutForSale(1, alice), "list error")
	assert.Nil(t, r.Buy(1, carol, 10), "buy error")
	assert.Equal(t, uint64(token.MaximumHoldings+1), token.Holdings(carol), "purchases unexpectedly capped")
}

func TestListingLifecycle(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa4)
	mallory := makeAccount(0xe4)

	id, err := r.CreateToken("Silver", "Metal", 15, "hashSilver", alice)
	assert.Nil(t, err, "create error")

	created, err := r.GetMetadata(id)
	assert.Nil(t, err, "metadata error")

	// list then cancel returns the token to its original state
	assert.Nil(t, r.PutForSale(id, alice), "list error")

	listed, err := r.GetMetadata(id)
	assert.Nil(t, err, "metadata error")
	assert.True(t, listed.ForSale, "token not listed")
	assert.Equal(t, created.LastTransferAt, listed.LastTransferAt, "listing stamped a transfer")

	assert.Nil(t, r.CancelSale(id, alice), "cancel error")

	cancelled, err := r.GetMetadata(id)
	assert.Nil(t, err, "metadata error")
	assert.True(t, reflect.DeepEqual(created, cancelled), "list/cancel changed other fields")

	// precondition violations
	assert.Equal(t, fault.NotListedForSale, r.CancelSale(id, alice), "cancel of unlisted token")
	assert.Nil(t, r.PutForSale(id, alice), "relist error")
	assert.Equal(t, fault.AlreadyListedForSale, r.PutForSale(id, alice), "double listing")
	assert.Equal(t, fault.NotTokenOwner, r.CancelSale(id, mallory), "foreign cancel")
	assert.Equal(t, fault.NotTokenOwner, r.PutForSale(id, mallory), "foreign listing")
	assert.Equal(t, fault.TokenIdNotFound, r.PutForSale(99, alice), "listing of missing token")
}

func TestZeroValueCannotBeListed(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa5)

	id, err := r.CreateToken("Worthless", "Type", 0, "hash", alice)
	assert.Nil(t, err, "create error")
	assert.Equal(t, fault.ValueIsZero, r.PutForSale(id, alice), "zero value listing accepted")
}

func TestBuy(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	seller := makeAccount(0xa6)
	buyer := makeAccount(0xb6)

	id, err := r.CreateToken("Token 1", "Type", 10, "hash", seller)
	assert.Nil(t, err, "create error")

	// not listed yet
	assert.Equal(t, fault.NotListedForSale, r.Buy(id, buyer, 10), "unlisted buy accepted")

	assert.Nil(t, r.PutForSale(id, seller), "list error")

	// exact payment only: both under and over payment are rejected
	before := snapshot(t, r, seller, buyer)
	assert.Equal(t, fault.PaymentMismatch, r.Buy(id, buyer, 9), "underpayment accepted")
	assertUnchanged(t, before, snapshot(t, r, seller, buyer))
	assert.Equal(t, fault.PaymentMismatch, r.Buy(id, buyer, 11), "overpayment accepted")
	assertUnchanged(t, before, snapshot(t, r, seller, buyer))

	assert.Equal(t, fault.SelfPurchase, r.Buy(id, seller, 10), "self purchase accepted")
	assertUnchanged(t, before, snapshot(t, r, seller, buyer))

	assert.Nil(t, r.Buy(id, buyer, 10), "buy error")

	sold, err := r.GetMetadata(id)
	assert.Nil(t, err, "metadata error")
	assert.True(t, sold.Owner.Equal(buyer), "ownership did not move")
	assert.False(t, sold.ForSale, "sale flag not cleared")
	assert.Equal(t, 1, len(sold.PreviousOwners), "wrong provenance length")
	assert.True(t, sold.PreviousOwners[0].Equal(seller), "wrong provenance entry")
	assert.True(t, sold.LastTransferAt >= sold.CreatedAt, "transfer time before creation")

	// the full payment settled to the seller, exactly once
	assert.Equal(t, uint64(10), r.BalanceOf(seller), "seller not paid")
	assert.Equal(t, uint64(0), r.BalanceOf(buyer), "buyer unexpectedly credited")

	// a completed sale cannot be bought again
	assert.Equal(t, fault.NotListedForSale, r.Buy(id, seller, 10), "completed sale still open")
}

func TestExchangeOneForOne(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa7)
	bob := makeAccount(0xb7)

	idA, err := r.CreateToken("TokenA", "Resource", 50, "hashA", alice)
	assert.Nil(t, err, "create error")
	idB, err := r.CreateToken("TokenB", "Resource", 50, "hashB", bob)
	assert.Nil(t, err, "create error")

	assert.Nil(t, r.Exchange([]uint64{idA}, []uint64{idB}, alice), "exchange error")

	a, err := r.GetMetadata(idA)
	assert.Nil(t, err, "metadata error")
	b, err := r.GetMetadata(idB)
	assert.Nil(t, err, "metadata error")

	assert.True(t, a.Owner.Equal(bob), "token A did not move")
	assert.True(t, b.Owner.Equal(alice), "token B did not move")
	assert.Equal(t, 1, len(a.PreviousOwners), "wrong provenance on A")
	assert.True(t, a.PreviousOwners[0].Equal(alice), "wrong provenance entry on A")

	// no payment moves on barter
	assert.Equal(t, uint64(0), r.BalanceOf(alice), "barter credited alice")
	assert.Equal(t, uint64(0), r.BalanceOf(bob), "barter credited bob")
}

func TestExchangeValueParity(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa8)
	bob := makeAccount(0xb8)

	idX, err := r.CreateToken("TokenX", "Resource", 40, "hashX", alice)
	assert.Nil(t, err, "create error")
	idY, err := r.CreateToken("TokenY", "Resource", 30, "hashY", bob)
	assert.Nil(t, err, "create error")

	before := snapshot(t, r, alice, bob)
	err = r.Exchange([]uint64{idX}, []uint64{idY}, alice)
	assert.Equal(t, fault.ValueMismatch, err, "unequal exchange accepted")
	assertUnchanged(t, before, snapshot(t, r, alice, bob))
}

func TestExchangeManyForMany(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa9)
	bob := makeAccount(0xb9)

	// 10 + 20 on one side, 5 + 25 on the other
	id1, _ := r.CreateToken("A1", "Resource", 10, "h", alice)
	id2, _ := r.CreateToken("A2", "Resource", 20, "h", alice)
	id3, _ := r.CreateToken("B1", "Resource", 5, "h", bob)
	id4, _ := r.CreateToken("B2", "Resource", 25, "h", bob)

	assert.Nil(t, r.Exchange([]uint64{id1, id2}, []uint64{id3, id4}, alice), "exchange error")

	for _, id := range []uint64{id1, id2} {
		record, err := r.GetMetadata(id)
		assert.Nil(t, err, "metadata error")
		assert.True(t, record.Owner.Equal(bob), "token %d did not reach bob", id)
	}
	for _, id := range []uint64{id3, id4} {
		record, err := r.GetMetadata(id)
		assert.Nil(t, err, "metadata error")
		assert.True(t, record.Owner.Equal(alice), "token %d did not reach alice", id)
	}

	assert.Equal(t, uint64(2), token.Holdings(alice), "wrong holdings for alice")
	assert.Equal(t, uint64(2), token.Holdings(bob), "wrong holdings for bob")
}

func TestExchangeValidation(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xaa)
	bob := makeAccount(0xba)
	carol := makeAccount(0xca)

	idA, _ := r.CreateToken("A", "Resource", 50, "h", alice)
	idB, _ := r.CreateToken("B", "Resource", 50, "h", bob)
	idC, _ := r.CreateToken("C", "Resource", 50, "h", carol)
	idA2, _ := r.CreateToken("A2", "Resource", 50, "h", alice)

	before := snapshot(t, r, alice, bob, carol)

	err := r.Exchange([]uint64{}, []uint64{idB}, alice)
	assert.Equal(t, fault.EmptySelection, err, "empty from side accepted")

	err = r.Exchange([]uint64{idA}, []uint64{}, alice)
	assert.Equal(t, fault.EmptySelection, err, "empty to side accepted")

	err = r.Exchange([]uint64{idA, idA}, []uint64{idB}, alice)
	assert.Equal(t, fault.DuplicateTokenId, err, "duplicate id accepted")

	err = r.Exchange([]uint64{idA}, []uint64{99}, alice)
	assert.Equal(t, fault.TokenIdNotFound, err, "missing token accepted")

	// caller must own every token offered
	err = r.Exchange([]uint64{idB}, []uint64{idA}, alice)
	assert.Equal(t, fault.OwnershipMismatch, err, "foreign offer accepted")

	// requested side must have a single owner
	err = r.Exchange([]uint64{idA, idA2}, []uint64{idB, idC}, alice)
	assert.Equal(t, fault.OwnershipMismatch, err, "mixed counterparty accepted")

	// both sides owned by the caller is not an exchange
	err = r.Exchange([]uint64{idA}, []uint64{idA2}, alice)
	assert.Equal(t, fault.OwnershipMismatch, err, "self exchange accepted")

	assertUnchanged(t, before, snapshot(t, r, alice, bob, carol))
}

func TestProvenanceGrowsOncePerTransfer(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xab)
	bob := makeAccount(0xbb)

	id, err := r.CreateToken("Wanderer", "Type", 7, "h", alice)
	assert.Nil(t, err, "create error")

	// bounce the token back and forth via sales
	owners := []*account.Account{alice, bob, alice, bob}
	for i := 0; i+1 < len(owners); i += 1 {
		assert.Nil(t, r.PutForSale(id, owners[i]), "list error at step %d", i)
		assert.Nil(t, r.Buy(id, owners[i+1], 7), "buy error at step %d", i)

		record, err := r.GetMetadata(id)
		assert.Nil(t, err, "metadata error")
		assert.Equal(t, i+1, len(record.PreviousOwners), "wrong provenance length at step %d", i)
		assert.True(t, record.PreviousOwners[i].Equal(owners[i]), "wrong provenance order at step %d", i)
	}

	// each completed sale settled once
	assert.Equal(t, uint64(14), r.BalanceOf(alice), "wrong alice balance")
	assert.Equal(t, uint64(7), r.BalanceOf(bob), "wrong bob balance")
}

func TestTokensOf(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xac)
	bob := makeAccount(0xbc)

	first, _ := r.CreateToken("one", "Type", 1, "h", alice)
	_, _ = r.CreateToken("other", "Type", 2, "h", bob)
	second, _ := r.CreateToken("two", "Type", 3, "h", alice)

	records, err := r.TokensOf(alice)
	assert.Nil(t, err, "tokens of error")
	assert.Equal(t, 2, len(records), "wrong holding count")
	assert.Equal(t, first, records[0].TokenId, "wrong first holding")
	assert.Equal(t, second, records[1].TokenId, "wrong second holding")
}

func TestExchangeValueSumOverflow(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa7)
	bob := makeAccount(0xb7)

	// the offered side sums past the uint64 range
	huge, _ := r.CreateToken("reserve", "Metal", math.MaxUint64, "h1", alice)
	small, _ := r.CreateToken("coin", "Metal", 2, "h2", alice)
	other, _ := r.CreateToken("gem", "Stone", 5, "h3", bob)

	before := snapshot(t, r, alice, bob)

	err := r.Exchange([]uint64{huge, small}, []uint64{other}, alice)
	assert.Equal(t, fault.ValueOverflow, err, "wrong error")

	assertUnchanged(t, before, snapshot(t, r, alice, bob))
}

func TestBuySettlementOverflow(t *testing.T) {
	setup(t)
	defer teardown(t)

	r := registry.Get()
	alice := makeAccount(0xa8)
	bob := makeAccount(0xb8)
	carol := makeAccount(0xc8)

	// drive alice's settled balance to the top of the range
	reserve, _ := r.CreateToken("reserve", "Metal", math.MaxUint64, "h1", alice)
	assert.Nil(t, r.PutForSale(reserve, alice), "sell error")
	assert.Nil(t, r.Buy(reserve, bob, math.MaxUint64), "buy error")
	assert.Equal(t, uint64(math.MaxUint64), r.BalanceOf(alice), "wrong balance")

	coin, _ := r.CreateToken("coin", "Metal", 5, "h2", alice)
	assert.Nil(t, r.PutForSale(coin, alice), "sell error")

	before := snapshot(t, r, alice, bob, carol)

	err := r.Buy(coin, carol, 5)
	assert.Equal(t, fault.BalanceOverflow, err, "wrong error")

	// the listing, its owner and all balances survive the refused sale
	assertUnchanged(t, before, snapshot(t, r, alice, bob, carol))

	record, err := r.GetMetadata(coin)
	assert.Nil(t, err, "metadata error")
	assert.True(t, record.Owner.Equal(alice), "owner changed")
	assert.True(t, record.ForSale, "listing dropped")
}
