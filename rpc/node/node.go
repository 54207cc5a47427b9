// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Metadata - the token description reported by Info
type Metadata interface {
	URI() string
	Minter() *address.Address
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Metadata Metadata
	counter  *atomic.Uint64
}

// New - create the node information service
func New(log *logger.L, start time.Time, version string, counter *atomic.Uint64, metadata Metadata) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Metadata: metadata,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version string           `json:"version"`
	Uptime  string           `json:"uptime"`
	RPCs    uint64           `json:"rpcs"`
	URI     string           `json:"uri"`
	Minter  *address.Address `json:"minter"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Metadata {
		return fault.NotInitialised
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Load()
	reply.URI = node.Metadata.URI()
	reply.Minter = node.Metadata.Minter()

	return nil
}
