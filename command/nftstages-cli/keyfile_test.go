// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
)

func TestKeyFileRoundTrip(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "owner.key")

	key, err := solana.NewRandomPrivateKey()
	assert.Nil(t, err, "wrong NewRandomPrivateKey")

	err = writeKeyFile(fileName, key, false)
	assert.Nil(t, err, "wrong writeKeyFile")

	actual, err := readKeyFile(fileName)
	assert.Nil(t, err, "wrong readKeyFile")
	assert.Equal(t, key.PublicKey(), actual.PublicKey(), "wrong public key")

	err = writeKeyFile(fileName, key, false)
	assert.NotNil(t, err, "existing key file was overwritten")

	err = writeKeyFile(fileName, key, true)
	assert.Nil(t, err, "wrong forced writeKeyFile")
}

func TestRunGenerate(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "owner.key")

	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)

	err := app.Run([]string{"nftstages-cli", "--key-file", fileName, "generate"})
	assert.Nil(t, err, "wrong generate")

	var reply generateReply
	err = json.Unmarshal(w.Bytes(), &reply)
	assert.Nil(t, err, "wrong output")
	assert.Equal(t, fileName, reply.KeyFile, "wrong key file")

	key, err := readKeyFile(fileName)
	assert.Nil(t, err, "wrong readKeyFile")
	assert.Equal(t, key.PublicKey(), reply.Owner, "wrong owner")
}

func TestCheckMint(t *testing.T) {
	_, err := checkMint("")
	assert.Equal(t, ErrMintRequired, err, "wrong empty mint error")

	_, err = checkMint("not-base58-0OIl")
	assert.NotNil(t, err, "invalid mint accepted")

	key, _ := solana.NewRandomPrivateKey()
	mint, err := checkMint(key.PublicKey().String())
	assert.Nil(t, err, "wrong checkMint")
	assert.Equal(t, key.PublicKey(), mint, "wrong mint")
}
