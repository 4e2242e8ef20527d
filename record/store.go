// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/address"
	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/level"
	"github.com/bitmark-inc/nftstages/storage"
)

// Store - level records of a single program
type Store interface {
	Address(solana.PublicKey) (solana.PublicKey, error)
	Create(storage.Transaction, solana.PublicKey, solana.PublicKey) (*TokenLevelRecord, solana.PublicKey, error)
	Get(storage.Transaction, solana.PublicKey) (*TokenLevelRecord, error)
	Put(storage.Transaction, solana.PublicKey, *TokenLevelRecord)
	Committed(solana.PublicKey) (*TokenLevelRecord, error)
}

type store struct {
	log     *logger.L
	program solana.PublicKey
	pool    storage.Handle
}

// New - record store over a storage pool
func New(log *logger.L, program solana.PublicKey, pool storage.Handle) Store {
	return &store{
		log:     log,
		program: program,
		pool:    pool,
	}
}

// Address - where the record of a mint lives
func (s *store) Address(mint solana.PublicKey) (solana.PublicKey, error) {
	recordAddress, _, err := address.Record(s.program, mint)
	return recordAddress, err
}

// Create - allocate and initialise the record of a mint
//
// an existing initialised record is returned unchanged
func (s *store) Create(trx storage.Transaction, mint solana.PublicKey, payer solana.PublicKey) (*TokenLevelRecord, solana.PublicKey, error) {
	if payer.IsZero() {
		return nil, solana.PublicKey{}, fault.ErrInvalidPayer
	}

	recordAddress, recordSalt, err := address.Record(s.program, mint)
	if nil != err {
		return nil, solana.PublicKey{}, err
	}
	_, authoritySalt, err := address.Authority(s.program)
	if nil != err {
		return nil, solana.PublicKey{}, err
	}

	if packed := trx.Get(s.pool, recordAddress[:]); nil != packed {
		r, err := Packed(packed).Unpack()
		if nil != err {
			return nil, solana.PublicKey{}, err
		}
		if r.Initialised {
			s.log.Infof("record: %s already initialised at level: %d", recordAddress, r.Level)
			return r, recordAddress, nil
		}
	}

	r := &TokenLevelRecord{
		Initialised:   true,
		Level:         level.Minimum,
		RecordSalt:    recordSalt,
		AuthoritySalt: authoritySalt,
		Mint:          mint,
	}
	trx.Put(s.pool, recordAddress[:], r.Pack())

	s.log.Infof("initialise record: %s  mint: %s  payer: %s", recordAddress, mint, payer)
	return r, recordAddress, nil
}

// Get - read a record inside a transaction
func (s *store) Get(trx storage.Transaction, recordAddress solana.PublicKey) (*TokenLevelRecord, error) {
	return unpackOrMissing(trx.Get(s.pool, recordAddress[:]))
}

// Put - stage a modified record
func (s *store) Put(trx storage.Transaction, recordAddress solana.PublicKey, r *TokenLevelRecord) {
	trx.Put(s.pool, recordAddress[:], r.Pack())
}

// Committed - read a record outside any transaction
func (s *store) Committed(recordAddress solana.PublicKey) (*TokenLevelRecord, error) {
	return unpackOrMissing(s.pool.Get(recordAddress[:]))
}

func unpackOrMissing(packed []byte) (*TokenLevelRecord, error) {
	if nil == packed {
		return nil, fault.ErrRecordNotInitialised
	}
	return Packed(packed).Unpack()
}
