// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/resourceledger/registryd/rpc/exchange"
)

func runSwap(c *cli.Context) error {

	caller, err := accountFromFlag(c, "owner")
	if nil != err {
		return err
	}

	from, err := parseIdList(c.String("from"))
	if nil != err {
		return err
	}

	to, err := parseIdList(c.String("to"))
	if nil != err {
		return err
	}

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := exchange.TokensArguments{
		From:   from,
		To:     to,
		Caller: caller,
	}

	var reply exchange.TokensReply
	if err := client.Call("Exchange.Tokens", &arguments, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}
