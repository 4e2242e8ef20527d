// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signature

import (
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/nftstages/fault"
)

// Message - the bytes an owner signs for one call
//
// "<method>:<mint>[:<field>...]:<timestamp>"
// fields bind call specific state, e.g. the level a level up starts from
func Message(method string, mint solana.PublicKey, timestamp int64, fields ...string) []byte {
	parts := make([]string, 0, len(fields)+3)
	parts = append(parts, method, mint.String())
	parts = append(parts, fields...)
	parts = append(parts, strconv.FormatInt(timestamp, 10))
	return []byte(strings.Join(parts, ":"))
}

// Sign - base58 signature of a call
func Sign(key solana.PrivateKey, method string, mint solana.PublicKey, timestamp int64, fields ...string) (string, error) {
	s, err := key.Sign(Message(method, mint, timestamp, fields...))
	if nil != err {
		return "", err
	}
	return s.String(), nil
}

// Verify - check a call was signed by owner within window of now
func Verify(owner solana.PublicKey, signature string, method string, mint solana.PublicKey, timestamp int64, window time.Duration, now time.Time, fields ...string) error {
	if "" == signature {
		return fault.ErrMissingParameters
	}

	signed := time.Unix(timestamp, 0)
	if signed.Before(now.Add(-window)) || signed.After(now.Add(window)) {
		return fault.ErrSignatureExpired
	}

	s, err := solana.SignatureFromBase58(signature)
	if nil != err {
		return fault.ErrInvalidSignature
	}
	if !s.Verify(owner, Message(method, mint, timestamp, fields...)) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// PublicKey - decode a base58 key argument
func PublicKey(s string) (solana.PublicKey, error) {
	if "" == s {
		return solana.PublicKey{}, fault.ErrMissingParameters
	}
	key, err := solana.PublicKeyFromBase58(s)
	if nil != err {
		return solana.PublicKey{}, fault.ErrInvalidPublicKey
	}
	return key, nil
}

// Arguments - mint and the owner's signature over the call
type Arguments struct {
	Mint      string `json:"mint"`      // base58
	Owner     string `json:"owner"`     // base58
	Timestamp int64  `json:"timestamp"` // unix seconds
	Signature string `json:"signature"` // base58
}

// NewArguments - signed arguments for a call made now
func NewArguments(key solana.PrivateKey, method string, mint solana.PublicKey, now time.Time, fields ...string) (*Arguments, error) {
	timestamp := now.Unix()
	s, err := Sign(key, method, mint, timestamp, fields...)
	if nil != err {
		return nil, err
	}
	return &Arguments{
		Mint:      mint.String(),
		Owner:     key.PublicKey().String(),
		Timestamp: timestamp,
		Signature: s,
	}, nil
}

// Check - decode the keys and verify the signature
func (a *Arguments) Check(method string, window time.Duration, now time.Time, fields ...string) (solana.PublicKey, solana.PublicKey, error) {
	mint, err := PublicKey(a.Mint)
	if nil != err {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	owner, err := PublicKey(a.Owner)
	if nil != err {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}

	err = Verify(owner, a.Signature, method, mint, a.Timestamp, window, now, fields...)
	if nil != err {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	return mint, owner, nil
}
