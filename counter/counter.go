// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - unsigned 64 bit counter safe for concurrent use
//
// the zero value is ready to use; do not copy after first use
type Counter struct {
	value atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

// Decrement - subtract 1 from a counter, returns new value
func (c *Counter) Decrement() uint64 {
	return c.value.Add(^uint64(0))
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.value.Load()
}

// Reset - set to zero, returns the previous value
func (c *Counter) Reset() uint64 {
	return c.value.Swap(0)
}
