// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/address"
	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/record"
)

// Proof - permission to sign once as the program authority
type Proof struct {
	sync.Mutex
	ID      uuid.UUID
	Address solana.PublicKey
	used    bool
}

// Reconstruct - rebuild the authority from the salt held in a record
//
// the result must equal the address derived from the program alone
func Reconstruct(log *logger.L, program solana.PublicKey, r *record.TokenLevelRecord) (*Proof, error) {
	id := uuid.New()

	live, _, err := address.Authority(program)
	if nil != err {
		log.Criticalf("%s: authority derivation failed: %s", id, err)
		return nil, fault.ErrSignatureDerivationMismatch
	}

	candidate, err := address.RecreateAuthority(program, r.AuthoritySalt)
	if nil != err {
		log.Criticalf("%s: mint: %s  salt: %d does not give an authority: %s", id, r.Mint, r.AuthoritySalt, err)
		return nil, fault.ErrSignatureDerivationMismatch
	}

	if !live.Equals(candidate) {
		log.Criticalf("%s: mint: %s  salt: %d  authority: %s  expected: %s", id, r.Mint, r.AuthoritySalt, candidate, live)
		return nil, fault.ErrSignatureDerivationMismatch
	}

	log.Debugf("%s: authority: %s  mint: %s", id, live, r.Mint)

	return &Proof{
		ID:      id,
		Address: live,
	}, nil
}

// VerifyRecord - the record must live at the address its own salt and
// mint give, and belong to the requested mint
func VerifyRecord(log *logger.L, program solana.PublicKey, recordAddress solana.PublicKey, mint solana.PublicKey, r *record.TokenLevelRecord) error {
	if !r.Mint.Equals(mint) {
		log.Criticalf("record: %s  holds mint: %s  requested mint: %s", recordAddress, r.Mint, mint)
		return fault.ErrRecordDerivationMismatch
	}

	candidate, err := address.RecreateRecord(program, r.Mint, r.RecordSalt)
	if nil != err {
		log.Criticalf("record: %s  mint: %s  salt: %d does not give an address: %s", recordAddress, r.Mint, r.RecordSalt, err)
		return fault.ErrRecordDerivationMismatch
	}

	if !candidate.Equals(recordAddress) {
		log.Criticalf("record: %s  mint: %s  salt: %d  derives: %s", recordAddress, r.Mint, r.RecordSalt, candidate)
		return fault.ErrRecordDerivationMismatch
	}
	return nil
}

// Invoke - run fn signed by the authority
//
// a proof can only be used once
func (p *Proof) Invoke(fn func(signer solana.PublicKey) error) error {
	p.Lock()
	if p.used {
		p.Unlock()
		return fault.ErrProofAlreadyUsed
	}
	p.used = true
	p.Unlock()

	return fn(p.Address)
}
