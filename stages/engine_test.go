// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stages_test

import (
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/address"
	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/fixtures"
	"github.com/bitmark-inc/nftstages/level"
	"github.com/bitmark-inc/nftstages/metadata"
	"github.com/bitmark-inc/nftstages/ownership"
	"github.com/bitmark-inc/nftstages/record"
	"github.com/bitmark-inc/nftstages/stages"
	"github.com/bitmark-inc/nftstages/storage"
)

func setupEngine(t *testing.T) *stages.Engine {
	fixtures.SetupTestLogger()
	err := storage.Initialise(filepath.Join(t.TempDir(), "stages.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	ownership.Initialise(storage.Pool.Owners)

	log := logger.New(fixtures.LogCategory)
	return stages.NewEngine(
		address.ProgramID,
		record.New(log, address.ProgramID, storage.Pool.Records),
		metadata.New(log, storage.Pool.Descriptors),
		ownership.Get(),
	)
}

func teardownEngine() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func descriptorData(uri string) metadata.DataV2 {
	creators := []metadata.Creator{
		{Address: fixtures.OwnerPublicKey, Verified: true, Share: 100},
	}
	return metadata.DataV2{
		Name:                 "Stage Token",
		Symbol:               "STG",
		URI:                  uri,
		SellerFeeBasisPoints: 250,
		Creators:             &creators,
		Collection:           &metadata.Collection{Verified: false, Key: fixtures.MintTwo},
		Uses:                 &metadata.Uses{UseMethod: 2, Remaining: 7, Total: 9},
	}
}

// issue, delegate and initialise a token ready for level up
func prepare(t *testing.T, e *stages.Engine, mint solana.PublicKey, uri string) {
	_, err := e.Issue(mint, fixtures.OwnerPublicKey, descriptorData(uri), true)
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	_, err = e.Delegate(mint, fixtures.OwnerPublicKey)
	if nil != err {
		t.Fatalf("delegate error: %s", err)
	}
	_, _, err = e.Init(mint, fixtures.OwnerPublicKey, fixtures.OwnerPublicKey)
	if nil != err {
		t.Fatalf("init error: %s", err)
	}
}

func committedRecord(t *testing.T, e *stages.Engine, mint solana.PublicKey) *record.TokenLevelRecord {
	recordAddress, err := e.Records.Address(mint)
	assert.Nil(t, err, "record address error")
	r, err := e.Records.Committed(recordAddress)
	assert.Nil(t, err, "committed record error")
	return r
}

// committed level of a token, zero when there is no record
func currentLevel(e *stages.Engine, mint solana.PublicKey) level.Level {
	recordAddress, err := e.Records.Address(mint)
	if nil != err {
		return 0
	}
	r, err := e.Records.Committed(recordAddress)
	if nil != err {
		return 0
	}
	return r.Level
}

// overwrite a committed record
func putRecord(t *testing.T, e *stages.Engine, mint solana.PublicKey, r *record.TokenLevelRecord) {
	recordAddress, _ := e.Records.Address(mint)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	e.Records.Put(trx, recordAddress, r)
	assert.Nil(t, trx.Commit(), "commit error")
}

func TestInit(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	r := committedRecord(t, e, fixtures.MintOne)
	assert.True(t, r.Initialised, "not initialised")
	assert.Equal(t, level.Minimum, r.Level, "wrong level")
	assert.Equal(t, fixtures.MintOne, r.Mint, "wrong mint")
}

func TestInitDoesNotReset(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	_, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Nil(t, err, "level up error")

	r, _, err := e.Init(fixtures.MintOne, fixtures.OwnerPublicKey, fixtures.OwnerPublicKey)
	assert.Nil(t, err, "second init error")
	assert.Equal(t, level.Level(2), r.Level, "level reset")
	assert.Equal(t, level.Level(2), committedRecord(t, e, fixtures.MintOne).Level, "committed level reset")
}

func TestInitNotOwner(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	_, err := e.Issue(fixtures.MintOne, fixtures.OwnerPublicKey, descriptorData("https://x/y/1.json"), true)
	assert.Nil(t, err, "issue error")

	_, _, err = e.Init(fixtures.MintOne, fixtures.OtherPublicKey, fixtures.OtherPublicKey)
	assert.Equal(t, fault.ErrNotTokenOwner, err, "wrong error")

	recordAddress, _ := e.Records.Address(fixtures.MintOne)
	_, err = e.Records.Committed(recordAddress)
	assert.Equal(t, fault.ErrRecordNotInitialised, err, "record written")
}

func TestLevelUpRoundTrip(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	for i := 0; i < 2; i += 1 {
		_, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
		assert.Nil(t, err, "level up error")
	}

	before, err := e.Descriptor(fixtures.MintOne)
	assert.Nil(t, err, "descriptor error")
	assert.Equal(t, "https://x/y/3.json", metadata.Trim(before.Data.URI), "wrong starting uri")

	result, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Nil(t, err, "level up error")
	assert.Equal(t, &stages.Result{Level: 4, URI: "https://x/y/4.json", Changed: true}, result, "wrong result")

	after, err := e.Descriptor(fixtures.MintOne)
	assert.Nil(t, err, "descriptor error")
	assert.Equal(t, "https://x/y/4.json", metadata.Trim(after.Data.URI), "wrong uri")

	after.Data.URI = before.Data.URI
	assert.Equal(t, before, after, "other descriptor fields changed")

	assert.Equal(t, level.Level(4), committedRecord(t, e, fixtures.MintOne).Level, "wrong level")
}

func TestLevelUpCeiling(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	for l := level.Level(2); l <= level.Maximum; l += 1 {
		result, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
		assert.Nil(t, err, "level up error")
		assert.Equal(t, l, result.Level, "wrong level")
		assert.True(t, result.Changed, "not changed")
	}

	before, err := e.Descriptor(fixtures.MintOne)
	assert.Nil(t, err, "descriptor error")
	assert.Equal(t, "https://x/y/6.json", metadata.Trim(before.Data.URI), "wrong final uri")

	for i := 0; i < 3; i += 1 {
		result, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
		assert.Nil(t, err, "ceiling error")
		assert.False(t, result.Changed, "changed at ceiling")
		assert.True(t, result.AtCeiling, "ceiling not reported")
		assert.Equal(t, level.Maximum, result.Level, "wrong ceiling level")
	}

	after, err := e.Descriptor(fixtures.MintOne)
	assert.Nil(t, err, "descriptor error")
	assert.Equal(t, before, after, "descriptor changed at ceiling")
	assert.Equal(t, level.Maximum, committedRecord(t, e, fixtures.MintOne).Level, "wrong level")

	assert.Equal(t, stages.Statistics{Advances: 5, Ceilings: 3}, e.Statistics(), "wrong statistics")
}

func TestLevelUpNotInitialised(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	_, err := e.Issue(fixtures.MintOne, fixtures.OwnerPublicKey, descriptorData("https://x/y/1.json"), true)
	assert.Nil(t, err, "issue error")
	_, err = e.Delegate(fixtures.MintOne, fixtures.OwnerPublicKey)
	assert.Nil(t, err, "delegate error")

	before, _ := e.Descriptor(fixtures.MintOne)

	result, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Nil(t, result, "result returned")
	assert.Equal(t, fault.ErrRecordNotInitialised, err, "wrong error")

	after, _ := e.Descriptor(fixtures.MintOne)
	assert.Equal(t, before, after, "descriptor written")
}

func TestLevelUpShortURI(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "json")

	before, _ := e.Descriptor(fixtures.MintOne)

	_, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Equal(t, fault.ErrMalformedUriSuffix, err, "wrong error")

	after, _ := e.Descriptor(fixtures.MintOne)
	assert.Equal(t, before, after, "descriptor written")
	assert.Equal(t, level.Minimum, committedRecord(t, e, fixtures.MintOne).Level, "level written")
}

func TestLevelUpTamperedSalt(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	r := committedRecord(t, e, fixtures.MintOne)
	r.AuthoritySalt -= 1
	putRecord(t, e, fixtures.MintOne, r)

	before, _ := e.Descriptor(fixtures.MintOne)

	_, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Equal(t, fault.ErrSignatureDerivationMismatch, err, "wrong error")

	after, _ := e.Descriptor(fixtures.MintOne)
	assert.Equal(t, before, after, "descriptor written")
	assert.Equal(t, r, committedRecord(t, e, fixtures.MintOne), "record written")
}

func TestLevelUpTamperedSaltAtCeiling(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	for l := level.Level(2); l <= level.Maximum; l += 1 {
		_, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
		assert.Nil(t, err, "level up error")
	}

	r := committedRecord(t, e, fixtures.MintOne)
	assert.Equal(t, level.Maximum, r.Level, "ceiling not reached")
	r.AuthoritySalt -= 1
	putRecord(t, e, fixtures.MintOne, r)

	result, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, level.Maximum)
	assert.Nil(t, result, "result returned")
	assert.Equal(t, fault.ErrSignatureDerivationMismatch, err, "wrong error")
	assert.Equal(t, r, committedRecord(t, e, fixtures.MintOne), "record written")
	assert.Equal(t, uint64(0), e.Statistics().Ceilings, "ceiling counted")
}

func TestLevelUpTamperedRecordSalt(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	r := committedRecord(t, e, fixtures.MintOne)
	r.RecordSalt -= 7
	putRecord(t, e, fixtures.MintOne, r)

	before, _ := e.Descriptor(fixtures.MintOne)

	result, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Nil(t, result, "result returned")
	assert.Equal(t, fault.ErrRecordDerivationMismatch, err, "wrong error")
	assert.True(t, fault.IsErrAuthority(err), "wrong class")

	after, _ := e.Descriptor(fixtures.MintOne)
	assert.Equal(t, before, after, "descriptor written")
	assert.Equal(t, r, committedRecord(t, e, fixtures.MintOne), "record written")
}

func TestLevelUpRecordOfOtherMint(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	r := committedRecord(t, e, fixtures.MintOne)
	r.Mint = fixtures.MintTwo
	putRecord(t, e, fixtures.MintOne, r)

	before, _ := e.Descriptor(fixtures.MintOne)

	_, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, level.Minimum)
	assert.Equal(t, fault.ErrRecordDerivationMismatch, err, "wrong error")

	after, _ := e.Descriptor(fixtures.MintOne)
	assert.Equal(t, before, after, "descriptor written")
	assert.Equal(t, r, committedRecord(t, e, fixtures.MintOne), "record written")
}

func TestLevelUpDescriptorOfOtherMint(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	m, err := e.Descriptor(fixtures.MintOne)
	assert.Nil(t, err, "descriptor error")
	m.Mint = fixtures.MintTwo
	packed, err := m.Pack()
	assert.Nil(t, err, "pack error")

	descriptorAddress, _, err := address.Metadata(fixtures.MintOne)
	assert.Nil(t, err, "descriptor address error")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	trx.Put(storage.Pool.Descriptors, descriptorAddress[:], packed)
	assert.Nil(t, trx.Commit(), "commit error")

	before, _ := e.Descriptor(fixtures.MintOne)

	_, err = e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, level.Minimum)
	assert.Equal(t, fault.ErrExternalRewriteRejected, err, "wrong error")
	assert.True(t, fault.IsErrRejected(err), "wrong class")

	after, _ := e.Descriptor(fixtures.MintOne)
	assert.Equal(t, before, after, "descriptor written")
	assert.Equal(t, level.Minimum, committedRecord(t, e, fixtures.MintOne).Level, "level written")
}

func TestLevelUpRepeatedRequest(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	result, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, level.Minimum)
	assert.Nil(t, err, "level up error")
	assert.Equal(t, level.Level(2), result.Level, "wrong level")

	before, _ := e.Descriptor(fixtures.MintOne)

	for i := 0; i < 3; i += 1 {
		result, err = e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, level.Minimum)
		assert.Nil(t, result, "repeat returned a result")
		assert.Equal(t, fault.ErrLevelMismatch, err, "repeat not rejected")
	}

	after, _ := e.Descriptor(fixtures.MintOne)
	assert.Equal(t, before, after, "descriptor written")
	assert.Equal(t, level.Level(2), committedRecord(t, e, fixtures.MintOne).Level, "level written")
	assert.Equal(t, stages.Statistics{Advances: 1}, e.Statistics(), "wrong statistics")
}

func TestLevelUpNotDelegated(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	_, err := e.Issue(fixtures.MintOne, fixtures.OwnerPublicKey, descriptorData("https://x/y/1.json"), true)
	assert.Nil(t, err, "issue error")
	_, _, err = e.Init(fixtures.MintOne, fixtures.OwnerPublicKey, fixtures.OwnerPublicKey)
	assert.Nil(t, err, "init error")

	_, err = e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Equal(t, fault.ErrUpdateAuthorityMismatch, err, "wrong error")
	assert.True(t, fault.IsErrRejected(err), "wrong class")
	assert.Equal(t, level.Minimum, committedRecord(t, e, fixtures.MintOne).Level, "level written")
}

func TestLevelUpImmutable(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	_, err := e.Issue(fixtures.MintOne, fixtures.OwnerPublicKey, descriptorData("https://x/y/1.json"), false)
	assert.Nil(t, err, "issue error")
	_, err = e.Delegate(fixtures.MintOne, fixtures.OwnerPublicKey)
	assert.Nil(t, err, "delegate error")
	_, _, err = e.Init(fixtures.MintOne, fixtures.OwnerPublicKey, fixtures.OwnerPublicKey)
	assert.Nil(t, err, "init error")

	_, err = e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Equal(t, fault.ErrDescriptorImmutable, err, "wrong error")
	assert.Equal(t, level.Minimum, committedRecord(t, e, fixtures.MintOne).Level, "level written")
}

func TestLevelUpNotOwner(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	_, err := e.LevelUp(fixtures.MintOne, fixtures.OtherPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Equal(t, fault.ErrNotTokenOwner, err, "wrong error")
	assert.Equal(t, level.Minimum, committedRecord(t, e, fixtures.MintOne).Level, "level written")
}

func TestLevelUpConflict(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	prepare(t, e, fixtures.MintOne, "https://x/y/1.json")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")

	_, err = e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Equal(t, fault.ErrTransactionInUse, err, "wrong error")

	trx.Abort()

	result, err := e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Nil(t, err, "retry error")
	assert.Equal(t, level.Level(2), result.Level, "wrong level after retry")
}

func TestInfo(t *testing.T) {
	e := setupEngine(t)
	defer teardownEngine()

	_, err := e.Info(fixtures.MintOne)
	assert.Equal(t, fault.ErrTokenNotFound, err, "unknown token")

	_, err = e.Issue(fixtures.MintOne, fixtures.OwnerPublicKey, descriptorData("https://x/y/1.json"), true)
	assert.Nil(t, err, "issue error")

	info, err := e.Info(fixtures.MintOne)
	assert.Nil(t, err, "info error")
	assert.False(t, info.Initialised, "initialised before init")
	assert.Equal(t, fixtures.OwnerPublicKey, info.UpdateAuthority, "wrong update authority")

	authorityAddress, err := e.Delegate(fixtures.MintOne, fixtures.OwnerPublicKey)
	assert.Nil(t, err, "delegate error")
	_, _, err = e.Init(fixtures.MintOne, fixtures.OwnerPublicKey, fixtures.OwnerPublicKey)
	assert.Nil(t, err, "init error")
	_, err = e.LevelUp(fixtures.MintOne, fixtures.OwnerPublicKey, currentLevel(e, fixtures.MintOne))
	assert.Nil(t, err, "level up error")

	info, err = e.Info(fixtures.MintOne)
	assert.Nil(t, err, "info error")
	assert.True(t, info.Initialised, "not initialised")
	assert.Equal(t, level.Level(2), info.Level, "wrong level")
	assert.Equal(t, "https://x/y/2.json", info.URI, "wrong uri")
	assert.Equal(t, fixtures.OwnerPublicKey, info.Owner, "wrong owner")
	assert.Equal(t, authorityAddress, info.UpdateAuthority, "wrong update authority")
}
