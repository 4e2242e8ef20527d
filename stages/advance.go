// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stages

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/authority"
	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/level"
	"github.com/bitmark-inc/nftstages/metadata"
	"github.com/bitmark-inc/nftstages/record"
	"github.com/bitmark-inc/nftstages/storage"
)

// Result - outcome of a level up
type Result struct {
	Level     level.Level `json:"level"`
	URI       string      `json:"uri,omitempty"`
	Changed   bool        `json:"changed"`
	AtCeiling bool        `json:"atCeiling"`
}

// Transition - the pieces needed to move a token up one level
type Transition struct {
	Log          *logger.L
	AuthorityLog *logger.L
	Program      solana.PublicKey
	Records      record.Store
	Descriptors  metadata.Registry
}

// Advance - move a record up one level and rewrite its descriptor
//
// the record address and authority are re-derived from the stored salts
// on every call, including at the ceiling
//
// all writes are staged in trx; on error the caller must abort
func (t *Transition) Advance(trx storage.Transaction, mint solana.PublicKey, recordAddress solana.PublicKey, r *record.TokenLevelRecord, descriptorAddress solana.PublicKey) (*Result, error) {
	if !r.Initialised {
		return nil, fault.ErrRecordNotInitialised
	}

	err := authority.VerifyRecord(t.AuthorityLog, t.Program, recordAddress, mint, r)
	if nil != err {
		return nil, err
	}

	proof, err := authority.Reconstruct(t.AuthorityLog, t.Program, r)
	if nil != err {
		return nil, err
	}

	if r.Level.IsCeiling() {
		t.Log.Infof("%s: record: %s already at max level: %d", proof.ID, recordAddress, r.Level)
		return &Result{
			Level:     r.Level,
			Changed:   false,
			AtCeiling: true,
		}, nil
	}

	m, err := t.Descriptors.Get(trx, descriptorAddress)
	if nil != err {
		return nil, err
	}
	if !m.Mint.Equals(r.Mint) {
		t.Log.Warnf("%s: descriptor: %s  mint: %s  record mint: %s", proof.ID, descriptorAddress, m.Mint, r.Mint)
		return nil, fault.ErrExternalRewriteRejected
	}

	next, ok := r.Level.Next()
	if !ok {
		return nil, fault.ErrInvalidLevel
	}

	t.Log.Debugf("%s: current uri: %q", proof.ID, metadata.Trim(m.Data.URI))

	uri, err := NextURI(m.Data.URI, next)
	if nil != err {
		return nil, err
	}

	t.Log.Debugf("%s: new uri: %q", proof.ID, uri)

	data := m.DataV2()
	data.URI = uri
	primarySaleHappened := m.PrimarySaleHappened
	isMutable := m.IsMutable

	err = proof.Invoke(func(signer solana.PublicKey) error {
		return t.Descriptors.UpdateV2(trx, descriptorAddress, signer, &metadata.Update{
			Data:                &data,
			PrimarySaleHappened: &primarySaleHappened,
			IsMutable:           &isMutable,
		})
	})
	if nil != err {
		t.Log.Warnf("%s: descriptor: %s  rewrite rejected: %s", proof.ID, descriptorAddress, err)
		return nil, err
	}

	r.Level = next
	t.Records.Put(trx, recordAddress, r)

	t.Log.Infof("%s: level up record: %s  to level: %d", proof.ID, recordAddress, next)

	return &Result{
		Level:   next,
		URI:     uri,
		Changed: true,
	}, nil
}
