// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/rpc/ratelimit"
)

func TestNewDefaults(t *testing.T) {
	limiter := ratelimit.New(0, 0)
	assert.Equal(t, rate.Limit(ratelimit.DefaultLimit), limiter.Limit(), "default limit")
	assert.Equal(t, ratelimit.DefaultBurst, limiter.Burst(), "default burst")

	limiter = ratelimit.New(5, 7)
	assert.Equal(t, rate.Limit(5), limiter.Limit(), "limit")
	assert.Equal(t, 7, limiter.Burst(), "burst")
}

func TestUpdate(t *testing.T) {
	limiter := ratelimit.New(5, 7)
	ratelimit.Update(limiter, 50, 70)
	assert.Equal(t, rate.Limit(50), limiter.Limit(), "updated limit")
	assert.Equal(t, 70, limiter.Burst(), "updated burst")
}

func TestLimitN(t *testing.T) {
	limiter := ratelimit.New(1000, 100)

	assert.Nil(t, ratelimit.Limit(limiter), "single request")
	assert.Nil(t, ratelimit.LimitN(limiter, 10, 100), "counted request")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 100), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 101, 100), "excess count")

	// a burst can never be reserved beyond its size
	small := ratelimit.New(1, 2)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(small, 3, 100), "beyond burst")
}
