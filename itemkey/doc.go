// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package itemkey derives the bounded length storage keys used by the
// ledger.
//
// A balance key has the form:
//
//   balances_<token id>_<encoded owner bytes>
//
// and can be split back into its token id and owner.  When that form
// would exceed the bound the key becomes:
//
//   balances#<base64url SHA3-256 of the preimage>
//
// which always fits but cannot be reversed.
package itemkey
