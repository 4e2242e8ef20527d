// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/address"
	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/storage"
)

// Registry - owner of all token descriptors
type Registry interface {
	Create(storage.Transaction, solana.PublicKey, solana.PublicKey, DataV2, bool) (solana.PublicKey, error)
	Get(storage.Transaction, solana.PublicKey) (*Metadata, error)
	Committed(solana.PublicKey) (*Metadata, error)
	UpdateV2(storage.Transaction, solana.PublicKey, solana.PublicKey, *Update) error
}

// Update - optional parts of a rewrite, nil leaves the field alone
type Update struct {
	NewUpdateAuthority  *solana.PublicKey
	Data                *DataV2
	PrimarySaleHappened *bool
	IsMutable           *bool
}

type registry struct {
	log  *logger.L
	pool storage.Handle
}

// New - descriptor registry over a storage pool
func New(log *logger.L, pool storage.Handle) Registry {
	return &registry{
		log:  log,
		pool: pool,
	}
}

// Create - store the first descriptor of a mint
func (r *registry) Create(trx storage.Transaction, mint solana.PublicKey, updateAuthority solana.PublicKey, data DataV2, isMutable bool) (solana.PublicKey, error) {
	descriptorAddress, _, err := address.Metadata(mint)
	if nil != err {
		return solana.PublicKey{}, err
	}

	if trx.Has(r.pool, descriptorAddress[:]) {
		return solana.PublicKey{}, fault.ErrDescriptorExists
	}

	if err := validate(&data); nil != err {
		return solana.PublicKey{}, err
	}

	m := &Metadata{
		Key:             KeyMetadataV1,
		UpdateAuthority: updateAuthority,
		Mint:            mint,
		IsMutable:       isMutable,
	}
	setData(m, &data)

	if err := r.put(trx, descriptorAddress, m); nil != err {
		return solana.PublicKey{}, err
	}

	r.log.Infof("create descriptor: %s  mint: %s  uri: %q", descriptorAddress, mint, data.URI)
	return descriptorAddress, nil
}

// Get - read a descriptor inside a transaction
func (r *registry) Get(trx storage.Transaction, descriptorAddress solana.PublicKey) (*Metadata, error) {
	return unpackOrMissing(trx.Get(r.pool, descriptorAddress[:]))
}

// Committed - read a descriptor outside any transaction
func (r *registry) Committed(descriptorAddress solana.PublicKey) (*Metadata, error) {
	return unpackOrMissing(r.pool.Get(descriptorAddress[:]))
}

// UpdateV2 - rewrite a descriptor on behalf of its update authority
//
// every refusal is a RejectedError and nothing is staged
func (r *registry) UpdateV2(trx storage.Transaction, descriptorAddress solana.PublicKey, signer solana.PublicKey, update *Update) error {
	m, err := r.Get(trx, descriptorAddress)
	if nil != err {
		return err
	}

	if !m.UpdateAuthority.Equals(signer) {
		r.log.Warnf("descriptor: %s  signer: %s is not update authority: %s", descriptorAddress, signer, m.UpdateAuthority)
		return fault.ErrUpdateAuthorityMismatch
	}

	if nil != update.Data {
		if !m.IsMutable {
			return fault.ErrDescriptorImmutable
		}
		if err := validate(update.Data); nil != err {
			return err
		}
		setData(m, update.Data)
	}

	if nil != update.NewUpdateAuthority {
		m.UpdateAuthority = *update.NewUpdateAuthority
	}

	if nil != update.PrimarySaleHappened {
		if m.PrimarySaleHappened && !*update.PrimarySaleHappened {
			return fault.ErrPrimarySaleCannotBeReset
		}
		m.PrimarySaleHappened = *update.PrimarySaleHappened
	}

	if nil != update.IsMutable {
		if !m.IsMutable && *update.IsMutable {
			return fault.ErrIsMutableCannotBeReset
		}
		m.IsMutable = *update.IsMutable
	}

	if err := r.put(trx, descriptorAddress, m); nil != err {
		return err
	}

	r.log.Debugf("update descriptor: %s  uri: %q", descriptorAddress, Trim(m.Data.URI))
	return nil
}

func (r *registry) put(trx storage.Transaction, descriptorAddress solana.PublicKey, m *Metadata) error {
	packed, err := m.Pack()
	if nil != err {
		return err
	}
	trx.Put(r.pool, descriptorAddress[:], packed)
	return nil
}

func unpackOrMissing(packed []byte) (*Metadata, error) {
	if nil == packed {
		return nil, fault.ErrDescriptorNotFound
	}
	return Unpack(packed)
}

// copy a rewrite payload into the stored form, padding the strings
func setData(m *Metadata, data *DataV2) {
	m.Data = Data{
		Name:                 pad(data.Name, MaxNameLength),
		Symbol:               pad(data.Symbol, MaxSymbolLength),
		URI:                  pad(data.URI, MaxURILength),
		SellerFeeBasisPoints: data.SellerFeeBasisPoints,
		Creators:             data.Creators,
	}
	m.Collection = data.Collection
	m.Uses = data.Uses
}

func validate(data *DataV2) error {
	if len(data.Name) > MaxNameLength {
		return fault.ErrDescriptorNameTooLong
	}
	if len(data.Symbol) > MaxSymbolLength {
		return fault.ErrDescriptorSymbolTooLong
	}
	if len(data.URI) > MaxURILength {
		return fault.ErrDescriptorUriTooLong
	}
	if data.SellerFeeBasisPoints > MaxFeeBasisPoints {
		return fault.ErrInvalidFeeBasisPoints
	}
	if nil != data.Creators {
		creators := *data.Creators
		if 0 == len(creators) || len(creators) > maxCreatorLimit {
			return fault.ErrCreatorSharesInvalid
		}
		total := 0
		for _, c := range creators {
			total += int(c.Share)
		}
		if requiredCreatorShare != total {
			return fault.ErrCreatorSharesInvalid
		}
	}
	return nil
}
