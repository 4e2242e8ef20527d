// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftstages/command/nftstages-cli/rpccalls"
)

func runInit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkMint(c.String("mint"))
	if nil != err {
		return err
	}

	var payer *solana.PublicKey
	if s := c.String("payer"); "" != s {
		p, err := solana.PublicKeyFromBase58(s)
		if nil != err {
			return err
		}
		payer = &p
	}

	key, err := readKeyFile(m.keyFile)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Init(key, mint, payer)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
