// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/nftstages/level"
	"github.com/bitmark-inc/nftstages/rpc/signature"
	"github.com/bitmark-inc/nftstages/rpc/stage"
	"github.com/bitmark-inc/nftstages/stages"
)

// Init - create the level record of a token
func (c *Client) Init(key solana.PrivateKey, mint solana.PublicKey, payer *solana.PublicKey) (*stage.InitReply, error) {
	signed, err := signature.NewArguments(key, "Stages.Init", mint, time.Now())
	if nil != err {
		return nil, err
	}

	arguments := stage.InitArguments{
		Arguments: *signed,
	}
	if nil != payer {
		arguments.Payer = payer.String()
	}

	var reply stage.InitReply
	if err := c.call("Stages.Init", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// LevelUp - advance a token by one level from the expected level
func (c *Client) LevelUp(key solana.PrivateKey, mint solana.PublicKey, expected level.Level) (*stages.Result, error) {
	signed, err := signature.NewArguments(key, "Stages.LevelUp", mint, time.Now(), expected.String())
	if nil != err {
		return nil, err
	}

	arguments := stage.LevelUpArguments{
		Arguments: *signed,
		Level:     expected,
	}

	var reply stages.Result
	if err := c.call("Stages.LevelUp", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Info - committed state of a token
func (c *Client) Info(mint solana.PublicKey) (*stages.Info, error) {
	var reply stages.Info
	if err := c.call("Stages.Info", &stage.InfoArguments{Mint: mint.String()}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
