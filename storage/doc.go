// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. balance key  = printable key from itemkey.Balance (at most 64 bytes)
// 4. supply key   = printable key from itemkey.Supply (at most 64 bytes)
// 5. operator key = hex SHA3-256(owner ++ operator) (64 bytes)
// 6. amount       = big endian 256 bit unsigned integer (32 bytes)
//
// Balances:
//
//   B ++ balance key           - balance of one token held by one owner
//                                data: amount
//
// Supply:
//
//   S ++ supply key            - total minted less total burned
//                                data: amount
//
// Operators:
//
//   O ++ operator key          - owner has approved operator for all tokens
//                                data: 0x01
//
// Metadata:
//
//   M ++ "uri"                 - token URI
//                                data: utf-8 string
//
// Testing:
//   Z ++ key                   - testing data
package storage
