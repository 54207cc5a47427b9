// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)

	for i := 0; i < 10; i += 1 {
		err := ratelimit.Limit(limiter)
		assert.Nil(t, err, "wrong Limit")
	}
}

func TestLimitWhenBurstIsZero(t *testing.T) {
	limiter := rate.NewLimiter(10, 0)

	err := ratelimit.Limit(limiter)
	assert.Equal(t, fault.RateLimiting, err, "wrong error")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)

	err := ratelimit.LimitN(limiter, 5, 10)
	assert.Nil(t, err, "wrong LimitN")
}

func TestLimitNWhenCountInvalid(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)

	err := ratelimit.LimitN(limiter, 0, 10)
	assert.Equal(t, fault.InvalidCount, err, "wrong zero count")

	err = ratelimit.LimitN(limiter, 11, 10)
	assert.Equal(t, fault.InvalidCount, err, "wrong count above maximum")
}

func TestLimitNWhenCountExceedsBurst(t *testing.T) {
	limiter := rate.NewLimiter(1000, 4)

	err := ratelimit.LimitN(limiter, 5, 10)
	assert.Equal(t, fault.RateLimiting, err, "wrong error")
}

func TestAdjust(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)

	assert.False(t, ratelimit.Adjust(limiter, 0), "zero rate accepted")
	assert.False(t, ratelimit.Adjust(limiter, 200), "same rate reported as change")
	assert.Equal(t, rate.Limit(200), limiter.Limit(), "wrong limit")

	assert.True(t, ratelimit.Adjust(limiter, 50), "new rate not applied")
	assert.Equal(t, rate.Limit(50), limiter.Limit(), "wrong adjusted limit")
}
