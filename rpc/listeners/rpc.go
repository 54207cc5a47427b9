// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"go.uber.org/atomic"

	"github.com/bitmark-inc/tokenledger/fault"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - the client_rpc section of the configuration file
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	RequestRate        float64  `gluamapper:"request_rate" json:"request_rate"`
	RequestWindow      int      `gluamapper:"request_window" json:"request_window"` // seconds
}

// a validated listen address
type endpoint struct {
	network string // tcp, tcp4 or tcp6
	address string
}

type rpcListener struct {
	sync.Mutex
	log       *logger.L
	server    *rpc.Server
	tlsConfig *tls.Config
	endpoints []endpoint
	active    []net.Listener
	count     *atomic.Uint64 // connections being served, shared across endpoints
	limit     uint64
}

// NewRPC - validate the configuration and create a TLS JSON-RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *atomic.Uint64,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	endpoints := make([]endpoint, 0, len(configuration.Listen))
	for _, listen := range configuration.Listen {
		e, err := parseEndpoint(listen)
		if nil != err {
			log.Errorf("%s listen: %q  error: %s", logName, listen, err)
			return nil, err
		}
		endpoints = append(endpoints, e)
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:       log,
		server:    server,
		tlsConfig: tlsConfig,
		endpoints: endpoints,
		count:     count,
		limit:     configuration.MaximumConnections,
	}, nil
}

// host must be a literal IP or "*" for every interface
func parseEndpoint(listen string) (endpoint, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
	if nil != err {
		return endpoint{}, fault.InvalidIpAddress
	}

	if "*" == host {
		return endpoint{network: "tcp", address: net.JoinHostPort("::", port)}, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return endpoint{}, fault.InvalidIpAddress
	}
	network := "tcp6"
	if nil != ip.To4() {
		network = "tcp4"
	}
	return endpoint{network: network, address: net.JoinHostPort(host, port)}, nil
}

// Serve - start accepting on every endpoint
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, e := range r.endpoints {
		r.log.Infof("starting RPC server: %s", e.address)
		l, err := tls.Listen(e.network, e.address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.active = append(r.active, l)
		go r.accept(l)
	}
	return nil
}

// Stop - close all listeners, open connections finish their requests
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.active {
		_ = l.Close()
	}
	r.active = nil
}

func (r *rpcListener) accept(l net.Listener) {
	defer r.log.Infof("RPC accept terminated: %s", l.Addr())

	for {
		conn, err := l.Accept()
		if nil != err {
			r.log.Infof("rpc server accept error: %s", err)
			return
		}

		if r.count.Inc() > r.limit {
			r.count.Dec()
			r.log.Warnf("connection limit: %d reached, rejecting: %s", r.limit, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		go func(conn net.Conn) {
			defer r.count.Dec()
			defer conn.Close()
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}(conn)
	}
}
