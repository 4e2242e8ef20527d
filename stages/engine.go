// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stages

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/address"
	"github.com/bitmark-inc/nftstages/counter"
	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/level"
	"github.com/bitmark-inc/nftstages/metadata"
	"github.com/bitmark-inc/nftstages/ownership"
	"github.com/bitmark-inc/nftstages/record"
	"github.com/bitmark-inc/nftstages/storage"
)

// Engine - runs each operation as a single storage transaction
type Engine struct {
	Transition
	owners ownership.Ownership

	advances counter.Counter
	ceilings counter.Counter
}

// Info - read only view of a token
type Info struct {
	Mint              solana.PublicKey `json:"mint"`
	Owner             solana.PublicKey `json:"owner"`
	RecordAddress     solana.PublicKey `json:"recordAddress"`
	DescriptorAddress solana.PublicKey `json:"descriptorAddress"`
	Initialised       bool             `json:"initialised"`
	Level             level.Level      `json:"level"`
	URI               string           `json:"uri"`
	UpdateAuthority   solana.PublicKey `json:"updateAuthority"`
}

// Statistics - counts since start
type Statistics struct {
	Advances uint64 `json:"advances"`
	Ceilings uint64 `json:"ceilings"`
}

// NewEngine - create an engine for a program
func NewEngine(program solana.PublicKey, records record.Store, descriptors metadata.Registry, owners ownership.Ownership) *Engine {
	return &Engine{
		Transition: Transition{
			Log:          logger.New("stages"),
			AuthorityLog: logger.New("authority"),
			Program:      program,
			Records:      records,
			Descriptors:  descriptors,
		},
		owners: owners,
	}
}

// Init - create the level record of a token owned by owner
func (e *Engine) Init(mint solana.PublicKey, owner solana.PublicKey, payer solana.PublicKey) (*record.TokenLevelRecord, solana.PublicKey, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, solana.PublicKey{}, err
	}

	err = e.owners.Verify(trx, mint, owner)
	if nil != err {
		trx.Abort()
		return nil, solana.PublicKey{}, err
	}

	r, recordAddress, err := e.Records.Create(trx, mint, payer)
	if nil != err {
		trx.Abort()
		return nil, solana.PublicKey{}, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, solana.PublicKey{}, err
	}
	return r, recordAddress, nil
}

// LevelUp - advance a token owned by owner by one level
//
// expected is the level the caller saw; a stale or repeated request
// fails with ErrLevelMismatch and writes nothing
func (e *Engine) LevelUp(mint solana.PublicKey, owner solana.PublicKey, expected level.Level) (*Result, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	result, err := e.levelUp(trx, mint, owner, expected)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	if result.Changed {
		e.advances.Increment()
	} else {
		e.ceilings.Increment()
	}
	return result, nil
}

func (e *Engine) levelUp(trx storage.Transaction, mint solana.PublicKey, owner solana.PublicKey, expected level.Level) (*Result, error) {
	err := e.owners.Verify(trx, mint, owner)
	if nil != err {
		return nil, err
	}

	recordAddress, err := e.Records.Address(mint)
	if nil != err {
		return nil, err
	}
	descriptorAddress, _, err := address.Metadata(mint)
	if nil != err {
		return nil, err
	}

	r, err := e.Records.Get(trx, recordAddress)
	if nil != err {
		return nil, err
	}

	if r.Initialised && expected != r.Level {
		e.Log.Warnf("record: %s  level: %d  expected: %d", recordAddress, r.Level, expected)
		return nil, fault.ErrLevelMismatch
	}

	return e.Advance(trx, mint, recordAddress, r, descriptorAddress)
}

// Info - committed state of a token
func (e *Engine) Info(mint solana.PublicKey) (*Info, error) {
	owner, err := e.owners.Committed(mint)
	if nil != err {
		return nil, err
	}

	recordAddress, err := e.Records.Address(mint)
	if nil != err {
		return nil, err
	}
	descriptorAddress, _, err := address.Metadata(mint)
	if nil != err {
		return nil, err
	}

	info := &Info{
		Mint:              mint,
		Owner:             owner,
		RecordAddress:     recordAddress,
		DescriptorAddress: descriptorAddress,
	}

	r, err := e.Records.Committed(recordAddress)
	if nil == err {
		info.Initialised = r.Initialised
		info.Level = r.Level
	} else if !fault.IsErrNotFound(err) {
		return nil, err
	}

	m, err := e.Descriptors.Committed(descriptorAddress)
	if nil != err {
		return nil, err
	}
	info.URI = metadata.Trim(m.Data.URI)
	info.UpdateAuthority = m.UpdateAuthority

	return info, nil
}

// Statistics - advances and ceiling no-ops
func (e *Engine) Statistics() Statistics {
	return Statistics{
		Advances: e.advances.Uint64(),
		Ceilings: e.ceilings.Uint64(),
	}
}
