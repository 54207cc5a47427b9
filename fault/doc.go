// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - shared error values
//
// Every error is a comparable constant of one class type, so callers
// test with == for a specific failure or with an IsErr* function for
// a whole class.  Ledger outcomes such as InsufficientBalance and
// Overflow are ProcessError values.
package fault
