// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring token ledger services
//
// standard golang RPC services can be used on the client side to
// access these services, see the tokens package for the request
// types and the signing helper
package rpc
