// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/resourceledger/registryd/counter"
	"github.com/resourceledger/registryd/registry"
	"github.com/resourceledger/registryd/rpc/exchange"
	"github.com/resourceledger/registryd/rpc/market"
	"github.com/resourceledger/registryd/rpc/node"
	"github.com/resourceledger/registryd/rpc/owner"
	"github.com/resourceledger/registryd/rpc/token"
)

// Create - register all handlers on a fresh RPC server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	rgy := registry.Get()

	server := rpc.NewServer()

	_ = server.Register(token.New(log, rgy))
	_ = server.Register(market.New(log, rgy))
	_ = server.Register(exchange.New(log, rgy))
	_ = server.Register(owner.New(log, rgy))
	_ = server.Register(node.New(log, start, version, rpcCount, rgy))

	return server
}
