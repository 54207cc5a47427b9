// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokenledger/fault"
)

// Limit - wait for a single request slot
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - wait for count slots, count must be in [1, maximumCount]
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {

	// an invalid count still costs one slot
	if count <= 0 || count > maximumCount {
		if err := Limit(limiter); nil != err {
			return err
		}
		return fault.InvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}

// Adjust - change the sustained rate of a running limiter
//
// a non-positive rate leaves the limiter unchanged
func Adjust(limiter *rate.Limiter, perSecond float64) bool {
	if perSecond <= 0 || rate.Limit(perSecond) == limiter.Limit() {
		return false
	}
	limiter.SetLimit(rate.Limit(perSecond))
	return true
}
