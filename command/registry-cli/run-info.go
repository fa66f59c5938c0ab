// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/resourceledger/registryd/rpc/node"
)

func runInfo(c *cli.Context) error {

	client, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply node.InfoReply
	if err := client.Call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return err
	}

	return printJson(c.App.Writer, reply)
}
