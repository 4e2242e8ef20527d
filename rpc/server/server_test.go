// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/address"
	"github.com/bitmark-inc/nftstages/fixtures"
	"github.com/bitmark-inc/nftstages/level"
	"github.com/bitmark-inc/nftstages/metadata"
	"github.com/bitmark-inc/nftstages/ownership"
	"github.com/bitmark-inc/nftstages/record"
	"github.com/bitmark-inc/nftstages/rpc/server"
	"github.com/bitmark-inc/nftstages/rpc/signature"
	"github.com/bitmark-inc/nftstages/rpc/stage"
	"github.com/bitmark-inc/nftstages/rpc/token"
	"github.com/bitmark-inc/nftstages/stages"
	"github.com/bitmark-inc/nftstages/storage"
)

func signed(t *testing.T, method string, fields ...string) signature.Arguments {
	a, err := signature.NewArguments(fixtures.OwnerPrivateKey, method, fixtures.MintOne, time.Now(), fields...)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return *a
}

func TestServerLevelProgression(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := storage.Initialise(filepath.Join(t.TempDir(), "server.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer storage.Finalise()
	ownership.Initialise(storage.Pool.Owners)

	log := logger.New(fixtures.LogCategory)
	engine := stages.NewEngine(
		address.ProgramID,
		record.New(log, address.ProgramID, storage.Pool.Records),
		metadata.New(log, storage.Pool.Descriptors),
		ownership.Get(),
	)

	s := server.Create(log, engine, time.Minute)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer l.Close()
	go s.Accept(l)

	conn, err := net.Dial("tcp", l.Addr().String())
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var issueReply token.IssueReply
	err = client.Call("Token.Issue", &token.IssueArguments{
		Arguments: signed(t, "Token.Issue"),
		Name:      "Stage Token",
		Symbol:    "STG",
		URI:       "https://x/y/1.json",
		IsMutable: true,
	}, &issueReply)
	assert.Nil(t, err, "issue error")
	assert.Equal(t, fixtures.MintOne, issueReply.Mint, "wrong mint")

	var delegateReply token.DelegateReply
	err = client.Call("Token.Delegate", &token.DelegateArguments{Arguments: signed(t, "Token.Delegate")}, &delegateReply)
	assert.Nil(t, err, "delegate error")

	var initReply stage.InitReply
	err = client.Call("Stages.Init", &stage.InitArguments{Arguments: signed(t, "Stages.Init")}, &initReply)
	assert.Nil(t, err, "init error")
	assert.Equal(t, level.Minimum, initReply.Level, "wrong initial level")

	levelUp := stage.LevelUpArguments{
		Arguments: signed(t, "Stages.LevelUp", initReply.Level.String()),
		Level:     initReply.Level,
	}
	var result stages.Result
	err = client.Call("Stages.LevelUp", &levelUp, &result)
	assert.Nil(t, err, "level up error")
	assert.Equal(t, stages.Result{Level: 2, URI: "https://x/y/2.json", Changed: true}, result, "wrong result")

	// the same signed request sent again inside the window
	err = client.Call("Stages.LevelUp", &levelUp, &result)
	assert.NotNil(t, err, "repeated level up accepted")
	assert.Equal(t, "level does not match record", err.Error(), "wrong error text")

	var info stages.Info
	err = client.Call("Stages.Info", &stage.InfoArguments{Mint: fixtures.MintOne.String()}, &info)
	assert.Nil(t, err, "info error")
	assert.Equal(t, level.Level(2), info.Level, "wrong level")
	assert.Equal(t, delegateReply.Authority, info.UpdateAuthority, "wrong update authority")

	var descriptor token.DescriptorReply
	err = client.Call("Token.Descriptor", &token.DescriptorArguments{Mint: fixtures.MintOne.String()}, &descriptor)
	assert.Nil(t, err, "descriptor error")
	assert.Equal(t, "https://x/y/2.json", descriptor.URI, "wrong uri")
	assert.Equal(t, "Stage Token", descriptor.Name, "wrong name")

	// errors cross the wire as their text
	err = client.Call("Stages.LevelUp", &stage.LevelUpArguments{Arguments: signed(t, "Stages.Init", "2"), Level: 2}, &result)
	assert.NotNil(t, err, "wrong signature accepted")
	assert.Equal(t, "invalid signature", err.Error(), "wrong error text")
}
