// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token implements the multi-token entry points
//
// It decides who may move which balances (owners, approved operators
// and the single minter), keeps the total supply of each token id and
// runs every change as one storage transaction.  The balance
// arithmetic itself is in package ledger.
package token
