// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stages

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/nftstages/address"
	"github.com/bitmark-inc/nftstages/metadata"
	"github.com/bitmark-inc/nftstages/storage"
)

// Issue - create a token owned by owner with its first descriptor
//
// the owner is the initial update authority
func (e *Engine) Issue(mint solana.PublicKey, owner solana.PublicKey, data metadata.DataV2, isMutable bool) (solana.PublicKey, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return solana.PublicKey{}, err
	}

	err = e.owners.Issue(trx, mint, owner)
	if nil != err {
		trx.Abort()
		return solana.PublicKey{}, err
	}

	descriptorAddress, err := e.Descriptors.Create(trx, mint, owner, data, isMutable)
	if nil != err {
		trx.Abort()
		return solana.PublicKey{}, err
	}

	err = trx.Commit()
	if nil != err {
		return solana.PublicKey{}, err
	}

	e.Log.Infof("issue mint: %s  owner: %s", mint, owner)
	return descriptorAddress, nil
}

// Delegate - hand the descriptor update authority to the program
func (e *Engine) Delegate(mint solana.PublicKey, owner solana.PublicKey) (solana.PublicKey, error) {
	programAuthority, _, err := address.Authority(e.Program)
	if nil != err {
		return solana.PublicKey{}, err
	}
	descriptorAddress, _, err := address.Metadata(mint)
	if nil != err {
		return solana.PublicKey{}, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return solana.PublicKey{}, err
	}

	err = e.owners.Verify(trx, mint, owner)
	if nil != err {
		trx.Abort()
		return solana.PublicKey{}, err
	}

	err = e.Descriptors.UpdateV2(trx, descriptorAddress, owner, &metadata.Update{
		NewUpdateAuthority: &programAuthority,
	})
	if nil != err {
		trx.Abort()
		return solana.PublicKey{}, err
	}

	err = trx.Commit()
	if nil != err {
		return solana.PublicKey{}, err
	}

	e.Log.Infof("delegate mint: %s  descriptor: %s  to authority: %s", mint, descriptorAddress, programAuthority)
	return programAuthority, nil
}

// Descriptor - committed descriptor of a token
func (e *Engine) Descriptor(mint solana.PublicKey) (*metadata.Metadata, error) {
	descriptorAddress, _, err := address.Metadata(mint)
	if nil != err {
		return nil, err
	}
	return e.Descriptors.Committed(descriptorAddress)
}
