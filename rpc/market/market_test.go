// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/rpc/fixtures"
	"github.com/resourceledger/registryd/rpc/market"
	"github.com/resourceledger/registryd/rpc/mocks"
)

func testAccount(fill byte) *account.Account {
	return &account.Account{
		PublicKey: bytes.Repeat([]byte{fill}, 32),
	}
}

func newHandler(r *mocks.MockRegistry) market.Market {
	return market.Market{
		Log:      logger.New(fixtures.LogCategory),
		Limiter:  rate.NewLimiter(100, 100),
		Registry: r,
	}
}

func TestMarketSell(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	owner := testAccount(0xa1)

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().PutForSale(uint64(4), owner).Return(nil).Times(1)

	h := newHandler(r)

	var reply market.SellReply
	err := h.Sell(&market.SellArguments{TokenId: 4, Owner: owner}, &reply)
	assert.Nil(t, err, "wrong Sell")
	assert.Equal(t, uint64(4), reply.TokenId, "wrong token id")
}

func TestMarketSellWhenNotOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	stranger := testAccount(0xee)

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().PutForSale(uint64(4), stranger).Return(fault.NotTokenOwner).Times(1)

	h := newHandler(r)

	var reply market.SellReply
	err := h.Sell(&market.SellArguments{TokenId: 4, Owner: stranger}, &reply)
	assert.Equal(t, fault.NotTokenOwner, err, "wrong Sell")
}

func TestMarketSellWhenMissingOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := newHandler(mocks.NewMockRegistry(ctl))

	var reply market.SellReply
	err := h.Sell(&market.SellArguments{TokenId: 4}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong Sell")
}

func TestMarketCancel(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	owner := testAccount(0xa1)

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().CancelSale(uint64(4), owner).Return(nil).Times(1)

	h := newHandler(r)

	var reply market.CancelReply
	err := h.Cancel(&market.CancelArguments{TokenId: 4, Owner: owner}, &reply)
	assert.Nil(t, err, "wrong Cancel")
	assert.Equal(t, uint64(4), reply.TokenId, "wrong token id")
}

func TestMarketCancelWhenNotListed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	owner := testAccount(0xa1)

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().CancelSale(uint64(4), owner).Return(fault.NotListedForSale).Times(1)

	h := newHandler(r)

	var reply market.CancelReply
	err := h.Cancel(&market.CancelArguments{TokenId: 4, Owner: owner}, &reply)
	assert.Equal(t, fault.NotListedForSale, err, "wrong Cancel")
}

func TestMarketBuy(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	buyer := testAccount(0xb1)

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().Buy(uint64(4), buyer, uint64(25)).Return(nil).Times(1)

	h := newHandler(r)

	var reply market.BuyReply
	err := h.Buy(&market.BuyArguments{TokenId: 4, Buyer: buyer, Payment: 25}, &reply)
	assert.Nil(t, err, "wrong Buy")
	assert.Equal(t, uint64(4), reply.TokenId, "wrong token id")
}

func TestMarketBuyWhenPaymentMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	buyer := testAccount(0xb1)

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().Buy(uint64(4), buyer, uint64(24)).Return(fault.PaymentMismatch).Times(1)

	h := newHandler(r)

	var reply market.BuyReply
	err := h.Buy(&market.BuyArguments{TokenId: 4, Buyer: buyer, Payment: 24}, &reply)
	assert.Equal(t, fault.PaymentMismatch, err, "wrong Buy")
}

func TestMarketBuyWhenMissingBuyer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := newHandler(mocks.NewMockRegistry(ctl))

	var reply market.BuyReply
	err := h.Buy(&market.BuyArguments{TokenId: 4, Payment: 25}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong Buy")
}
