// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"bytes"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokenledger/address"
)

const (
	testingDirName = "testing"

	// LogCategory - logger tag used by the tests
	LogCategory = "testing"
)

// deterministic key pairs
var (
	MinterPrivateKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x01}, ed25519.SeedSize))
	MinterPublicKey  = MinterPrivateKey.Public().(ed25519.PublicKey)

	OwnerPrivateKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x0a}, ed25519.SeedSize))
	OwnerPublicKey  = OwnerPrivateKey.Public().(ed25519.PublicKey)

	ReceiverPrivateKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x0b}, ed25519.SeedSize))
	ReceiverPublicKey  = ReceiverPrivateKey.Public().(ed25519.PublicKey)
)

// Address - account address for a fixture public key
func Address(publicKey ed25519.PublicKey) *address.Address {
	a, err := address.NewAccount(publicKey)
	if nil != err {
		panic(err)
	}
	return a
}

// SetupTestLogger - log to a throw-away directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

var certificateData struct {
	once        sync.Once
	certificate string
	key         string
}

func generateCertificate() {
	certificateData.once.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("tokenledger test", validUntil, false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		certificateData.certificate = string(cert)
		certificateData.key = string(key)
	})
}

// Certificate - PEM certificate for TLS listener tests
func Certificate() string {
	generateCertificate()
	return certificateData.certificate
}

// Key - PEM private key matching Certificate
func Key() string {
	generateCertificate()
	return certificateData.key
}
