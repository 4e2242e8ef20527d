// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/nftstages/fault"
)

// domain tags
const (
	RecordSeed    = "DEFIxNFT"
	AuthoritySeed = "update_authority"
	MetadataSeed  = "metadata"
)

// well known programs
var (
	ProgramID         = solana.MustPublicKeyFromBase58("3fmuFJf2auxKMBJsx5YrUyRosi9yBGUz4vyPhLZTCY6P")
	MetadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
)

// Record - address of the level record for a token and its salt
func Record(program solana.PublicKey, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return find(recordSeeds(mint), program)
}

// Authority - address of the update authority shared by all records
func Authority(program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return find(authoritySeeds(), program)
}

// Metadata - address of the descriptor belonging to a token
func Metadata(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		[]byte(MetadataSeed),
		MetadataProgramID.Bytes(),
		mint.Bytes(),
	}
	return find(seeds, MetadataProgramID)
}

// RecreateRecord - rebuild a record address from a stored salt
func RecreateRecord(program solana.PublicKey, mint solana.PublicKey, salt uint8) (solana.PublicKey, error) {
	return create(append(recordSeeds(mint), []byte{salt}), program)
}

// RecreateAuthority - rebuild the authority address from a stored salt
func RecreateAuthority(program solana.PublicKey, salt uint8) (solana.PublicKey, error) {
	return create(append(authoritySeeds(), []byte{salt}), program)
}

func recordSeeds(mint solana.PublicKey) [][]byte {
	return [][]byte{
		[]byte(RecordSeed),
		mint.Bytes(),
	}
}

func authoritySeeds() [][]byte {
	return [][]byte{
		[]byte(AuthoritySeed),
	}
}

func find(seeds [][]byte, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	if program.IsZero() {
		return solana.PublicKey{}, 0, fault.ErrAddressDerivationFailed
	}
	key, salt, err := solana.FindProgramAddress(seeds, program)
	if nil != err {
		return solana.PublicKey{}, 0, fault.ErrAddressDerivationFailed
	}
	return key, salt, nil
}

func create(seeds [][]byte, program solana.PublicKey) (solana.PublicKey, error) {
	if program.IsZero() {
		return solana.PublicKey{}, fault.ErrAddressDerivationFailed
	}
	key, err := solana.CreateProgramAddress(seeds, program)
	if nil != err {
		return solana.PublicKey{}, fault.ErrAddressDerivationFailed
	}
	return key, nil
}
