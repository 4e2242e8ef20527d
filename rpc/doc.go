// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients wanting to issue, initialise and level up tokens
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//	Stages.Init      create the level record of a token
//	Stages.LevelUp   advance a token by one level
//	Stages.Info      read the committed state of a token
//	Token.Issue      create a token and its first descriptor
//	Token.Delegate   give the program authority the descriptor
//	Token.Descriptor read a descriptor
//
// calls that change state are signed by the token owner over
// "<Service.Method>:<mint>:<unix seconds>", Stages.LevelUp adds the
// level it expects to advance from: "<Service.Method>:<mint>:<level>:<unix seconds>"
package rpc
