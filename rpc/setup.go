// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/certificate"
	"github.com/bitmark-inc/tokenledger/rpc/listeners"
	"github.com/bitmark-inc/tokenledger/rpc/ratelimit"
	"github.com/bitmark-inc/tokenledger/rpc/server"
	"github.com/bitmark-inc/tokenledger/rpc/tokens"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	tokens   *tokens.Tokens
	listener listeners.Listener
	count    *atomic.Uint64

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC listener
//
// certificate and private_key in the configuration are PEM file names
func Initialise(configuration *listeners.RPCConfiguration, ledger tokens.Ledger, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	window := time.Duration(configuration.RequestWindow) * time.Second
	service := tokens.New(log, ledger, window)
	ratelimit.Adjust(service.Limiter, configuration.RequestRate)
	log.Infof("request window: %s  rate: %v/s", service.Window(), service.Limiter.Limit())

	count := atomic.NewUint64(0)

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		count,
		server.Create(log, version, service, count),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Stop()
		return err
	}

	globalData.tokens = service
	globalData.listener = rpcListener
	globalData.count = count

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()

	// finally...
	globalData.initialised = false
	globalData.listener = nil
	globalData.tokens = nil

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// SetRequestRate - change the sustained request rate of the tokens service
func SetRequestRate(perSecond float64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if ratelimit.Adjust(globalData.tokens.Limiter, perSecond) {
		globalData.log.Infof("request rate: %v/s", perSecond)
	}
	return nil
}

// Connections - number of open client connections
func Connections() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0
	}
	return globalData.count.Load()
}
