// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/fault"
)

var classifiers = map[string]func(error) bool{
	"exists":    fault.IsErrExists,
	"invalid":   fault.IsErrInvalid,
	"length":    fault.IsErrLength,
	"not found": fault.IsErrNotFound,
	"process":   fault.IsErrProcess,
	"record":    fault.IsErrRecord,
}

// each error must satisfy exactly its own classifier
func TestClasses(t *testing.T) {
	samples := map[error]string{
		fault.AlreadyInitialised:  "exists",
		fault.RequestReplayed:     "exists",
		fault.InvalidAddress:      "invalid",
		fault.RequestExpired:      "invalid",
		fault.LengthMismatch:      "length",
		fault.NotInitialised:      "not found",
		fault.UnknownPool:         "not found",
		fault.InsufficientBalance: "process",
		fault.Overflow:            "process",
		fault.NotMinter:           "process",
		fault.TruncatedRecord:     "record",
	}
	samples[fault.ProcessError("ad hoc")] = "process"

	for err, class := range samples {
		for name, is := range classifiers {
			assert.Equal(t, name == class, is(err), "%q classified as %s", err, name)
		}
	}
}

func TestGenericIsUnclassified(t *testing.T) {
	err := fault.GenericError("plain")
	assert.Equal(t, "plain", err.Error(), "message")
	for name, is := range classifiers {
		assert.False(t, is(err), "generic error classified as %s", name)
	}
}

func TestLedgerErrorsDistinct(t *testing.T) {
	assert.NotEqual(t, error(fault.InsufficientBalance), error(fault.Overflow), "ledger errors compare equal")
	assert.Equal(t, "insufficient balance", fault.InsufficientBalance.Error(), "message")
}
