// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/resourceledger/registryd/rpc/owner"
)

func runOwned(c *cli.Context) error {

	acc, err := accountFromFlag(c, "owner")
	if nil != err {
		return err
	}

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := owner.TokensArguments{
		Owner: acc,
	}

	var reply owner.TokensReply
	if err := client.Call("Owner.Tokens", &arguments, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}

func runBalance(c *cli.Context) error {

	acc, err := accountFromFlag(c, "owner")
	if nil != err {
		return err
	}

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := owner.BalanceArguments{
		Owner: acc,
	}

	var reply owner.BalanceReply
	if err := client.Call("Owner.Balance", &arguments, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}
