// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokenledger/address"
	"github.com/bitmark-inc/tokenledger/command/tokenledger-cli/rpccalls"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/tokens"
)

// accept a 32 byte seed or a 64 byte private key in hex
func parseSigner(text string) (*rpccalls.Signer, error) {
	b, err := hex.DecodeString(strings.TrimSpace(text))
	if nil != err {
		return nil, fmt.Errorf("key: %s", err)
	}

	var privateKey ed25519.PrivateKey
	switch len(b) {
	case ed25519.SeedSize:
		privateKey = ed25519.NewKeyFromSeed(b)
	case ed25519.PrivateKeySize:
		privateKey = ed25519.PrivateKey(b)
		if !bytes.Equal(ed25519.NewKeyFromSeed(b[:ed25519.SeedSize]), privateKey) {
			return nil, fault.InvalidKeyLength
		}
	default:
		return nil, fault.InvalidKeyLength
	}

	a, err := address.NewAccount(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}
	return &rpccalls.Signer{
		Address:    a,
		PrivateKey: privateKey,
	}, nil
}

// an explicit address or the signing key's address
func addressOrSigner(text string, m *metadata) (*address.Address, error) {
	if "" != text {
		return address.FromBase58(text)
	}
	if nil == m.signer {
		return nil, fmt.Errorf("address or signing key is required")
	}
	return m.signer.Address, nil
}

func requireSigner(m *metadata) (*rpccalls.Signer, error) {
	if nil == m.signer {
		return nil, fmt.Errorf("signing key is required")
	}
	return m.signer, nil
}

func requireString(name string, value string) (string, error) {
	if "" == value {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}

func parseAmounts(texts []string) ([]tokens.Amount, error) {
	amounts := make([]tokens.Amount, 0, len(texts))
	for _, s := range texts {
		a, err := tokens.ParseAmount(s)
		if nil != err {
			return nil, fmt.Errorf("amount: %q error: %s", s, err)
		}
		amounts = append(amounts, a)
	}
	return amounts, nil
}

func newClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
