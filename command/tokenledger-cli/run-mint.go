// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenledger/rpc/tokens"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := requireSigner(m)
	if nil != err {
		return err
	}

	to, err := requiredAddress("to", c.String("to"))
	if nil != err {
		return err
	}

	tokenID, amount, err := tokenAndAmount(c)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(signer, to, tokenID, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := requireSigner(m)
	if nil != err {
		return err
	}

	owner, err := addressOrSigner(c.String("owner"), m)
	if nil != err {
		return err
	}

	tokenID, amount, err := tokenAndAmount(c)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(signer, owner, tokenID, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := requireSigner(m)
	if nil != err {
		return err
	}

	operator, err := requiredAddress("operator", c.String("operator"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetApproval(signer, operator, !c.Bool("revoke"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func tokenAndAmount(c *cli.Context) (string, tokens.Amount, error) {
	tokenID, err := requireString("token", c.String("token"))
	if nil != err {
		return "", tokens.Amount{}, err
	}
	amountText, err := requireString("amount", c.String("amount"))
	if nil != err {
		return "", tokens.Amount{}, err
	}
	amount, err := tokens.ParseAmount(amountText)
	if nil != err {
		return "", tokens.Amount{}, err
	}
	return tokenID, amount, nil
}
