// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc"
	"github.com/bitmark-inc/tokenledger/rpc/fixtures"
	"github.com/bitmark-inc/tokenledger/rpc/listeners"
	"github.com/bitmark-inc/tokenledger/rpc/mocks"
	"github.com/bitmark-inc/tokenledger/rpc/tokens"
)

func writeCertificate(t *testing.T) (string, string, func()) {
	dir, err := ioutil.TempDir("", "rpc")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")
	_ = ioutil.WriteFile(cer, []byte(fixtures.Certificate()), 0600)
	_ = ioutil.WriteFile(key, []byte(fixtures.Key()), 0600)
	return cer, key, func() { _ = os.RemoveAll(dir) }
}

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, cleanup := writeCertificate(t)
	defer cleanup()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().URI().Return("uri").AnyTimes()

	port := freePort(t)
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Certificate:        cer,
		PrivateKey:         key,
		RequestRate:        50,
		RequestWindow:      60,
	}

	assert.Equal(t, fault.NotInitialised, rpc.SetRequestRate(10), "rate set before initialise")

	err := rpc.Initialise(&configuration, l, "1.0")
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&configuration, l, "1.0")
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise accepted")

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(c)

	var reply tokens.URIReply
	l.EXPECT().Minter().Return(nil).Times(1)
	err = client.Call("Tokens.URI", &tokens.URIArguments{}, &reply)
	assert.Nil(t, err, "wrong Tokens.URI")
	assert.Equal(t, "uri", reply.URI, "wrong uri")
	assert.Equal(t, uint64(1), rpc.Connections(), "wrong connection count")

	assert.Nil(t, rpc.SetRequestRate(10), "wrong SetRequestRate")

	_ = client.Close()

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")

	err = rpc.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "second Finalise accepted")
	assert.Equal(t, uint64(0), rpc.Connections(), "connections after Finalise")
}

func TestInitialiseWhenCertificateMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:2130"},
		Certificate:        filepath.Join(os.TempDir(), "no-such-certificate.crt"),
		PrivateKey:         filepath.Join(os.TempDir(), "no-such-certificate.key"),
	}

	err := rpc.Initialise(&configuration, nil, "1.0")
	assert.NotNil(t, err, "missing certificate accepted")
}
