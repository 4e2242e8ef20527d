// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/rpc"
	"github.com/bitmark-inc/nftstages/stages"
)

const statisticsInterval = 5 * time.Minute

// periodically log the engine counters when they have moved
type reporter struct {
	log      *logger.L
	engine   *stages.Engine
	interval time.Duration
	last     stages.Statistics
}

func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			r.report()
		}
	}
	r.log.Info("stopped")
}

func (r *reporter) report() {
	statistics := r.engine.Statistics()
	if statistics == r.last {
		return
	}
	r.last = statistics
	r.log.Infof("advances: %d  ceilings: %d  connections: %d", statistics.Advances, statistics.Ceilings, rpc.ConnectionCount())
}
