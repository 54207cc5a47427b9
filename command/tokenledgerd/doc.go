// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Multi-token ledger daemon
//
// This program keeps token balances in a LevelDB database and serves
// them to clients over JSON-RPC on TLS.  Mutating requests must be
// signed by the caller's ED25519 key.  See tokenledgerd.conf.sample
// for the configuration file layout.
package main
