// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli"
)

type generateReply struct {
	Owner   solana.PublicKey `json:"owner"`
	KeyFile string           `json:"key_file"`
}

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := solana.NewRandomPrivateKey()
	if nil != err {
		return err
	}

	err = writeKeyFile(m.keyFile, key, c.Bool("force"))
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Owner:   key.PublicKey(),
		KeyFile: m.keyFile,
	})
}
