// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/resourceledger/registryd/rpc/market"
)

func runSell(c *cli.Context) error {

	owner, err := accountFromFlag(c, "owner")
	if nil != err {
		return err
	}

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := market.SellArguments{
		TokenId: c.Uint64("token"),
		Owner:   owner,
	}

	var reply market.SellReply
	if err := client.Call("Market.Sell", &arguments, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}

func runCancel(c *cli.Context) error {

	owner, err := accountFromFlag(c, "owner")
	if nil != err {
		return err
	}

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := market.CancelArguments{
		TokenId: c.Uint64("token"),
		Owner:   owner,
	}

	var reply market.CancelReply
	if err := client.Call("Market.Cancel", &arguments, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}

func runBuy(c *cli.Context) error {

	buyer, err := accountFromFlag(c, "buyer")
	if nil != err {
		return err
	}

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := market.BuyArguments{
		TokenId: c.Uint64("token"),
		Buyer:   buyer,
		Payment: c.Uint64("payment"),
	}

	var reply market.BuyReply
	if err := client.Call("Market.Buy", &arguments, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}
