// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/gagliardetto/solana-go"
)

// store a key as a JSON array of bytes, as solana-keygen does
func writeKeyFile(fileName string, key solana.PrivateKey, overwrite bool) error {
	values := make([]int, len(key))
	for i, b := range key {
		values[i] = int(b)
	}
	buffer, err := json.Marshal(values)
	if nil != err {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(fileName, flags, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	_, err = f.Write(buffer)
	return err
}

func readKeyFile(fileName string) (solana.PrivateKey, error) {
	return solana.PrivateKeyFromSolanaKeygenFile(fileName)
}
