// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftstages/command/nftstages-cli/rpccalls"
)

func runLevelUp(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkMint(c.String("mint"))
	if nil != err {
		return err
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

	info, err := client.Info(mint)
	if nil != err {
		return err
	}

	reply, err := client.LevelUp(key, mint, info.Level)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
