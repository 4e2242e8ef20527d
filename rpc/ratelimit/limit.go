// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/nftstages/fault"
)

// Limit - wait for the limiter to allow a single request
func Limit(limiter *rate.Limiter) error {
	return LimitN(limiter, 1)
}

// LimitN - wait for the limiter to allow count requests
//
// a count larger than the burst can never be satisfied
func LimitN(limiter *rate.Limiter, count int) error {
	if count <= 0 {
		return fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}
