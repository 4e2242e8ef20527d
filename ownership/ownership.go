// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/storage"
)

// Ownership - interface for ownership
type Ownership interface {
	Issue(storage.Transaction, solana.PublicKey, solana.PublicKey) error
	Owner(storage.Transaction, solana.PublicKey) (solana.PublicKey, error)
	Verify(storage.Transaction, solana.PublicKey, solana.PublicKey) error
	Committed(solana.PublicKey) (solana.PublicKey, error)
}

type ownership struct {
	PoolOwners storage.Handle
}

var data ownership

// Initialise - initialise ownership
func Initialise(owners storage.Handle) {
	data = ownership{
		PoolOwners: owners,
	}
}

// Get - return Ownership interface
func Get() Ownership {
	return &data
}

// Issue - record the first owner of a mint
func (o *ownership) Issue(trx storage.Transaction, mint solana.PublicKey, owner solana.PublicKey) error {
	if owner.IsZero() || mint.IsZero() {
		return fault.ErrInvalidPublicKey
	}
	if trx.Has(o.PoolOwners, mint[:]) {
		return fault.ErrTokenExists
	}
	trx.Put(o.PoolOwners, mint[:], owner.Bytes())
	return nil
}

// Owner - current owner of a mint
func (o *ownership) Owner(trx storage.Transaction, mint solana.PublicKey) (solana.PublicKey, error) {
	return toOwner(trx.Get(o.PoolOwners, mint[:]))
}

// Verify - check that caller owns the mint
func (o *ownership) Verify(trx storage.Transaction, mint solana.PublicKey, caller solana.PublicKey) error {
	owner, err := o.Owner(trx, mint)
	if nil != err {
		return err
	}
	if !owner.Equals(caller) {
		return fault.ErrNotTokenOwner
	}
	return nil
}

// Committed - owner outside any transaction
func (o *ownership) Committed(mint solana.PublicKey) (solana.PublicKey, error) {
	return toOwner(o.PoolOwners.Get(mint[:]))
}

func toOwner(packed []byte) (solana.PublicKey, error) {
	if solana.PublicKeyLength != len(packed) {
		return solana.PublicKey{}, fault.ErrTokenNotFound
	}
	return solana.PublicKeyFromBytes(packed), nil
}
