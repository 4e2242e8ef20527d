// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftstages/background"
	"github.com/bitmark-inc/nftstages/fixtures"
	"github.com/bitmark-inc/nftstages/stages"
)

func TestReporterStops(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r := &reporter{
		log:      logger.New(fixtures.LogCategory),
		engine:   &stages.Engine{},
		interval: time.Millisecond,
	}

	p := background.Start(background.Processes{r}, nil)
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.Equal(t, stages.Statistics{}, r.last, "unchanged statistics were recorded")
}
