// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokenledger/address"
)

type generatedKey struct {
	Seed       string `json:"seed"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Address    string `json:"address"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return err
	}

	a, err := address.NewAccount(publicKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "public key: %x\n", publicKey)
	}

	printJson(m.w, generatedKey{
		Seed:       hex.EncodeToString(privateKey.Seed()),
		PrivateKey: hex.EncodeToString(privateKey),
		PublicKey:  hex.EncodeToString(publicKey),
		Address:    a.String(),
	})
	return nil
}
