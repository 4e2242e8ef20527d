// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 2)

	assert.Nil(t, ratelimit.Limit(limiter), "first request limited")
	assert.Nil(t, ratelimit.Limit(limiter), "second request limited")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(100, 5)

	assert.Nil(t, ratelimit.LimitN(limiter, 5), "burst request limited")
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 6), "over burst allowed")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0), "zero count allowed")
}
