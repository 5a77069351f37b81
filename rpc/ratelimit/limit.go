// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/receiptd/fault"
)

// defaults when the configuration has no values
const (
	DefaultLimit = 200
	DefaultBurst = 100
)

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - limiting for a multiple request
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	// invalid count gets limited as a single request
	if count <= 0 || count > maximumCount {

		r := limiter.Reserve()
		if !r.OK() {
			return fault.ErrRateLimiting
		}
		time.Sleep(r.Delay())

		return fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}

// New - a limiter with defaults applied to zero values
func New(limit float64, burst int) *rate.Limiter {
	limit, burst = normalise(limit, burst)
	return rate.NewLimiter(rate.Limit(limit), burst)
}

// Update - change a running limiter
func Update(limiter *rate.Limiter, limit float64, burst int) {
	limit, burst = normalise(limit, burst)
	now := time.Now()
	limiter.SetLimitAt(now, rate.Limit(limit))
	limiter.SetBurstAt(now, burst)
}

func normalise(limit float64, burst int) (float64, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return limit, burst
}
