// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/resourceledger/registryd/registry"
	"github.com/resourceledger/registryd/rpc/token"
)

func runList(c *cli.Context) error {

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply token.ListReply
	if err := client.Call("Token.List", &token.ListArguments{}, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}

func runMetadata(c *cli.Context) error {

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := token.MetadataArguments{
		TokenId: c.Uint64("token"),
	}

	var reply registry.Record
	if err := client.Call("Token.Metadata", &arguments, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}
