// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// call performs one RPC and, in verbose mode, echoes both directions
func (client *Client) call(method string, request interface{}, reply interface{}) error {
	client.trace("->", method, request)
	if err := client.client.Call(method, request, reply); nil != err {
		client.trace("<-", method, err.Error())
		return err
	}
	client.trace("<-", method, reply)
	return nil
}

func (client *Client) trace(direction string, method string, item interface{}) {
	if !client.verbose || nil == client.handle {
		return
	}
	b, err := json.MarshalIndent(item, "  ", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s %s: unprintable: %s\n", direction, method, err)
		return
	}
	fmt.Fprintf(client.handle, "%s %s\n  %s\n", direction, method, b)
}
