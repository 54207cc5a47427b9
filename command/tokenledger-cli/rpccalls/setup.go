// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/subtle"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// Signer - the identity that signs mutating requests
type Signer struct {
	Address    *address.Address
	PrivateKey ed25519.PrivateKey
}

// NewClient - create a RPC connection to a tokenledgerd
//
// a non-empty fingerprint is the hex SHA3-256 of the expected server
// certificate; otherwise any certificate is accepted
func NewClient(connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != fingerprint {
		expected, err := hex.DecodeString(fingerprint)
		if nil != err || 32 != len(expected) {
			return nil, fault.FingerprintMismatch
		}
		tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) {
				return fault.FingerprintMismatch
			}
			actual := certificate.Fingerprint(rawCerts[0])
			if 1 != subtle.ConstantTimeCompare(actual[:], expected) {
				return fault.FingerprintMismatch
			}
			return nil
		}
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the tokenledgerd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}
