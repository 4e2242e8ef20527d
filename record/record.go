// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/level"
)

// AccountName - account type tag hashed into the discriminator
const AccountName = "NftPda"

// byte sizes for the fixed layout
const (
	discriminatorLength = 8
	mintLength          = 32

	// discriminator ++ initialised ++ level ++ recordSalt ++ authoritySalt ++ mint
	Length = discriminatorLength + 1 + 1 + 1 + 1 + mintLength
)

// field offsets
const (
	initialisedOffset   = discriminatorLength
	levelOffset         = initialisedOffset + 1
	recordSaltOffset    = levelOffset + 1
	authoritySaltOffset = recordSaltOffset + 1
	mintOffset          = authoritySaltOffset + 1
)

// Discriminator - leading tag of every packed record
var Discriminator = bin.Sighash(bin.SIGHASH_ACCOUNT_NAMESPACE, AccountName)

// TokenLevelRecord - the unpacked level record of one token
type TokenLevelRecord struct {
	Initialised   bool             `json:"initialised"`
	Level         level.Level      `json:"level"`
	RecordSalt    uint8            `json:"recordSalt"`
	AuthoritySalt uint8            `json:"authoritySalt"`
	Mint          solana.PublicKey `json:"mint"`
}

// Packed - packed records are just a byte slice
type Packed []byte

// Pack - fixed width binary form
func (r *TokenLevelRecord) Pack() Packed {
	buffer := make([]byte, Length)
	copy(buffer, Discriminator)
	if r.Initialised {
		buffer[initialisedOffset] = 1
	}
	buffer[levelOffset] = byte(r.Level)
	buffer[recordSaltOffset] = r.RecordSalt
	buffer[authoritySaltOffset] = r.AuthoritySalt
	copy(buffer[mintOffset:], r.Mint[:])
	return buffer
}

// Unpack - decode a packed record
func (packed Packed) Unpack() (*TokenLevelRecord, error) {
	if Length != len(packed) {
		return nil, fault.ErrRecordLength
	}
	if !bytes.Equal(Discriminator, packed[:discriminatorLength]) {
		return nil, fault.ErrDiscriminatorMismatch
	}

	r := &TokenLevelRecord{
		Initialised:   0 != packed[initialisedOffset],
		Level:         level.Level(packed[levelOffset]),
		RecordSalt:    packed[recordSaltOffset],
		AuthoritySalt: packed[authoritySaltOffset],
		Mint:          solana.PublicKeyFromBytes(packed[mintOffset:]),
	}

	if r.Initialised && !r.Level.IsValid() {
		return nil, fault.ErrInvalidLevel
	}
	return r, nil
}
