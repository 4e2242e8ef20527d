// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftstages/command/nftstages-cli/rpccalls"
)

func runIssue(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequired("name", c.String("name"))
	if nil != err {
		return err
	}
	uri, err := checkRequired("uri", c.String("uri"))
	if nil != err {
		return err
	}
	fee := c.Int("fee")
	if fee < 0 || fee > math.MaxUint16 {
		return ErrFeeOutOfRange
	}

	key, err := readKeyFile(m.keyFile)
	if nil != err {
		return err
	}

	// a fresh mint unless one was supplied
	var mint solana.PublicKey
	if s := c.String("mint"); "" != s {
		mint, err = solana.PublicKeyFromBase58(s)
		if nil != err {
			return err
		}
	} else {
		mintKey, err := solana.NewRandomPrivateKey()
		if nil != err {
			return err
		}
		mint = mintKey.PublicKey()
	}

	data := &rpccalls.IssueData{
		Name:                 name,
		Symbol:               c.String("symbol"),
		URI:                  uri,
		SellerFeeBasisPoints: uint16(fee),
		IsMutable:            !c.Bool("immutable"),
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Issue(key, mint, data)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
