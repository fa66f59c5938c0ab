// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	netrpc "net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/fault"
)

// connect to registryd and wrap the connection in a JSON-RPC client
//
// the server uses a self-signed certificate so verification is skipped,
// the fingerprint printed at server start identifies the remote end
func newClient(c *cli.Context) (*netrpc.Client, error) {

	hostPort := c.GlobalString("connect")
	if "" == hostPort {
		return nil, fault.MissingParameters
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", hostPort, tlsConfig)
	if nil != err {
		return nil, err
	}

	return jsonrpc.NewClient(conn), nil
}

// decode a required account flag
func accountFromFlag(c *cli.Context, name string) (*account.Account, error) {
	s := c.String(name)
	if "" == s {
		return nil, fault.MissingParameters
	}
	return account.AccountFromBase58(s)
}

// decode a comma-separated list of token ids
func parseIdList(s string) ([]uint64, error) {
	if "" == s {
		return nil, fault.EmptySelection
	}
	parts := strings.Split(s, ",")
	ids := make([]uint64, len(parts))
	for i, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if nil != err {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func printError(handle io.Writer, err error) {
	fmt.Fprintf(handle, "error: %s\n", err)
}
