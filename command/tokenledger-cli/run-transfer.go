// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenledger/address"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := requireSigner(m)
	if nil != err {
		return err
	}

	from, err := addressOrSigner(c.String("from"), m)
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

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "token: %q  amount: %s\n", tokenID, amount)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(signer, from, to, tokenID, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBatchTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := requireSigner(m)
	if nil != err {
		return err
	}

	from, err := addressOrSigner(c.String("from"), m)
	if nil != err {
		return err
	}

	to, err := requiredAddress("to", c.String("to"))
	if nil != err {
		return err
	}

	tokenIDs := c.StringSlice("token")
	amounts, err := parseAmounts(c.StringSlice("amount"))
	if nil != err {
		return err
	}
	if len(tokenIDs) != len(amounts) {
		return fmt.Errorf("token count: %d does not match amount count: %d", len(tokenIDs), len(amounts))
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "tokens: %q  amounts: %v\n", tokenIDs, amounts)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.BatchTransfer(signer, from, to, tokenIDs, amounts)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func requiredAddress(name string, text string) (*address.Address, error) {
	if _, err := requireString(name, text); nil != err {
		return nil, err
	}
	return address.FromBase58(text)
}
