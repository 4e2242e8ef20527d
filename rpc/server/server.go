// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/rpc/stage"
	"github.com/bitmark-inc/nftstages/rpc/token"
)

// Engine - everything the services call into
type Engine interface {
	stage.Progression
	token.Registrar
}

// Create - an RPC server with all services registered
func Create(log *logger.L, engine Engine, window time.Duration) *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(stage.New(log, engine, window))
	_ = server.Register(token.New(log, engine, window))

	return server
}
