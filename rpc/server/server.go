// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/tokenledger/rpc/node"
	"github.com/bitmark-inc/tokenledger/rpc/tokens"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, service *tokens.Tokens, rpcCount *atomic.Uint64) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(service)
	_ = server.Register(node.New(log, start, version, rpcCount, service.Ledger))

	return server
}
