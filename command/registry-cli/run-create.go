// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/resourceledger/registryd/fault"
	"github.com/resourceledger/registryd/rpc/token"
)

func runCreate(c *cli.Context) error {

	owner, err := accountFromFlag(c, "owner")
	if nil != err {
		return err
	}

	name := c.String("name")
	if "" == name {
		return fault.MissingParameters
	}

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := token.CreateArguments{
		Name:         name,
		ResourceType: c.String("type"),
		Value:        c.Uint64("value"),
		ContentHash:  c.String("hash"),
		Owner:        owner,
	}

	var reply token.CreateReply
	if err := client.Call("Token.Create", &arguments, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}
