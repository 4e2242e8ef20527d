// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrFeeOutOfRange = errors.New("fee out of range")
	ErrMintRequired  = errors.New("mint is required")
)

func checkRequired(name string, value string) (string, error) {
	if "" == value {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}

func checkMint(s string) (solana.PublicKey, error) {
	if "" == s {
		return solana.PublicKey{}, ErrMintRequired
	}
	return solana.PublicKeyFromBase58(s)
}
