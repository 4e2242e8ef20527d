// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata

import (
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// KeyMetadataV1 - account key of a descriptor
const KeyMetadataV1 = uint8(4)

// fixed widths of the padded string fields
const (
	MaxNameLength        = 32
	MaxSymbolLength      = 10
	MaxURILength         = 200
	MaxFeeBasisPoints    = 10000
	maxCreatorLimit      = 5
	requiredCreatorShare = 100
)

// Creator - a creator entry, passed through unchanged
type Creator struct {
	Address  solana.PublicKey `json:"address"`
	Verified bool             `json:"verified"`
	Share    uint8            `json:"share"`
}

// Collection - collection membership, passed through unchanged
type Collection struct {
	Verified bool             `json:"verified"`
	Key      solana.PublicKey `json:"key"`
}

// Uses - usage limits, passed through unchanged
type Uses struct {
	UseMethod uint8  `json:"useMethod"`
	Remaining uint64 `json:"remaining"`
	Total     uint64 `json:"total"`
}

// Data - the mutable part of a descriptor as stored
type Data struct {
	Name                 string     `json:"name"`
	Symbol               string     `json:"symbol"`
	URI                  string     `json:"uri"`
	SellerFeeBasisPoints uint16     `json:"sellerFeeBasisPoints"`
	Creators             *[]Creator `bin:"optional" json:"creators"`
}

// DataV2 - rewrite payload: Data plus collection and uses
type DataV2 struct {
	Name                 string      `json:"name"`
	Symbol               string      `json:"symbol"`
	URI                  string      `json:"uri"`
	SellerFeeBasisPoints uint16      `json:"sellerFeeBasisPoints"`
	Creators             *[]Creator  `bin:"optional" json:"creators"`
	Collection           *Collection `bin:"optional" json:"collection"`
	Uses                 *Uses       `bin:"optional" json:"uses"`
}

// Metadata - the descriptor record of a token
type Metadata struct {
	Key                 uint8            `json:"key"`
	UpdateAuthority     solana.PublicKey `json:"updateAuthority"`
	Mint                solana.PublicKey `json:"mint"`
	Data                Data             `json:"data"`
	PrimarySaleHappened bool             `json:"primarySaleHappened"`
	IsMutable           bool             `json:"isMutable"`
	EditionNonce        *uint8           `bin:"optional" json:"editionNonce"`
	TokenStandard       *uint8           `bin:"optional" json:"tokenStandard"`
	Collection          *Collection      `bin:"optional" json:"collection"`
	Uses                *Uses            `bin:"optional" json:"uses"`
}

// Pack - Borsh encoding of a descriptor
func (m *Metadata) Pack() ([]byte, error) {
	return bin.MarshalBorsh(m)
}

// Unpack - decode a Borsh encoded descriptor
func Unpack(buffer []byte) (*Metadata, error) {
	m := &Metadata{}
	err := bin.UnmarshalBorsh(m, buffer)
	if nil != err {
		return nil, err
	}
	return m, nil
}

// DataV2 - current data in rewrite form, every field preserved
func (m *Metadata) DataV2() DataV2 {
	return DataV2{
		Name:                 m.Data.Name,
		Symbol:               m.Data.Symbol,
		URI:                  m.Data.URI,
		SellerFeeBasisPoints: m.Data.SellerFeeBasisPoints,
		Creators:             m.Data.Creators,
		Collection:           m.Collection,
		Uses:                 m.Uses,
	}
}

// Trim - remove the null padding of a stored string
func Trim(s string) string {
	return strings.TrimRight(s, "\x00")
}

// pad a string with nulls to its fixed width
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat("\x00", width-len(s))
}
