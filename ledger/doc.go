// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger keeps the balance of every (token id, owner) pair
//
// Balances are 256 bit unsigned integers stored as 32 byte big endian
// records under keys from the package deriver, see SetDeriver and
// InstallEncoding.  An absent record is a zero balance.  Every operation checks its arithmetic completely before it
// writes anything, so a failed call leaves the handle untouched.
//
// The storage handle is always passed in; BalancesHandle returns the
// one backed by the database.
package ledger
