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

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return err
	}

	printJson(m.w, info)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenIDs := c.StringSlice("token")
	if 0 == len(tokenIDs) {
		return fmt.Errorf("token is required")
	}

	// one owner applies to every token
	ownerTexts := c.StringSlice("owner")
	if len(ownerTexts) <= 1 {
		text := ""
		if 1 == len(ownerTexts) {
			text = ownerTexts[0]
		}
		ownerTexts = make([]string, len(tokenIDs))
		for i := range ownerTexts {
			ownerTexts[i] = text
		}
	}
	if len(ownerTexts) != len(tokenIDs) {
		return fmt.Errorf("owner count: %d does not match token count: %d", len(ownerTexts), len(tokenIDs))
	}

	owners := make([]*address.Address, len(ownerTexts))
	for i, text := range ownerTexts {
		owner, err := addressOrSigner(text, m)
		if nil != err {
			return err
		}
		owners[i] = owner
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owners: %v\n", owners)
		fmt.Fprintf(m.e, "tokens: %q\n", tokenIDs)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if 1 == len(tokenIDs) {
		response, err := client.Balance(owners[0], tokenIDs[0])
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	response, err := client.BalanceBatch(owners, tokenIDs)
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}

func runSupply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenID, err := requireString("token", c.String("token"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Supply(tokenID)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runApproved(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := addressOrSigner(c.String("owner"), m)
	if nil != err {
		return err
	}

	operatorText, err := requireString("operator", c.String("operator"))
	if nil != err {
		return err
	}
	operator, err := address.FromBase58(operatorText)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IsApproved(owner, operator)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
