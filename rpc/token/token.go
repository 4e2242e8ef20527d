// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/address"
	"github.com/bitmark-inc/nftstages/metadata"
	"github.com/bitmark-inc/nftstages/rpc/ratelimit"
	"github.com/bitmark-inc/nftstages/rpc/signature"
)

//go:generate mockgen -destination=../mocks/registrar.go -package=mocks github.com/bitmark-inc/nftstages/rpc/token Registrar

// Registrar - token and descriptor operations behind the service
type Registrar interface {
	Issue(solana.PublicKey, solana.PublicKey, metadata.DataV2, bool) (solana.PublicKey, error)
	Delegate(solana.PublicKey, solana.PublicKey) (solana.PublicKey, error)
	Descriptor(solana.PublicKey) (*metadata.Metadata, error)
}

// Token
// -----

// Token - type for the RPC
type Token struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Registrar Registrar
	Window    time.Duration
	Now       func() time.Time
}

const (
	rateLimitToken = 100
	rateBurstToken = 50
)

// New - create the Token service
func New(log *logger.L, registrar Registrar, window time.Duration) *Token {
	return &Token{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitToken, rateBurstToken),
		Registrar: registrar,
		Window:    window,
		Now:       time.Now,
	}
}

// Token issue
// -----------

// IssueArguments - arguments for Token.Issue
type IssueArguments struct {
	signature.Arguments
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	URI                  string `json:"uri"`
	SellerFeeBasisPoints uint16 `json:"sellerFeeBasisPoints"`
	IsMutable            bool   `json:"isMutable"`
}

// IssueReply - result of Token.Issue
type IssueReply struct {
	Mint       solana.PublicKey `json:"mint"`
	Descriptor solana.PublicKey `json:"descriptor"`
}

// Issue - create a token owned by the caller
func (t *Token) Issue(arguments *IssueArguments, reply *IssueReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	mint, owner, err := t.verify("Token.Issue", &arguments.Arguments)
	if nil != err {
		return err
	}

	data := metadata.DataV2{
		Name:                 arguments.Name,
		Symbol:               arguments.Symbol,
		URI:                  arguments.URI,
		SellerFeeBasisPoints: arguments.SellerFeeBasisPoints,
	}

	t.Log.Infof("Token.Issue: mint: %s  owner: %s  uri: %q", mint, owner, arguments.URI)

	descriptorAddress, err := t.Registrar.Issue(mint, owner, data, arguments.IsMutable)
	if nil != err {
		t.Log.Errorf("Token.Issue: mint: %s  error: %s", mint, err)
		return err
	}

	reply.Mint = mint
	reply.Descriptor = descriptorAddress
	return nil
}

// Token delegate
// --------------

// DelegateArguments - arguments for Token.Delegate
type DelegateArguments struct {
	signature.Arguments
}

// DelegateReply - result of Token.Delegate
type DelegateReply struct {
	Authority solana.PublicKey `json:"authority"`
}

// Delegate - give the program authority the descriptor of a token
func (t *Token) Delegate(arguments *DelegateArguments, reply *DelegateReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	mint, owner, err := t.verify("Token.Delegate", &arguments.Arguments)
	if nil != err {
		return err
	}

	t.Log.Infof("Token.Delegate: mint: %s  owner: %s", mint, owner)

	authorityAddress, err := t.Registrar.Delegate(mint, owner)
	if nil != err {
		t.Log.Errorf("Token.Delegate: mint: %s  error: %s", mint, err)
		return err
	}

	reply.Authority = authorityAddress
	return nil
}

// Token descriptor
// ----------------

// DescriptorArguments - arguments for Token.Descriptor
type DescriptorArguments struct {
	Mint string `json:"mint"` // base58
}

// DescriptorReply - descriptor with padding removed
type DescriptorReply struct {
	Address              solana.PublicKey     `json:"address"`
	UpdateAuthority      solana.PublicKey     `json:"updateAuthority"`
	Name                 string               `json:"name"`
	Symbol               string               `json:"symbol"`
	URI                  string               `json:"uri"`
	SellerFeeBasisPoints uint16               `json:"sellerFeeBasisPoints"`
	Creators             *[]metadata.Creator  `json:"creators,omitempty"`
	Collection           *metadata.Collection `json:"collection,omitempty"`
	Uses                 *metadata.Uses       `json:"uses,omitempty"`
	PrimarySaleHappened  bool                 `json:"primarySaleHappened"`
	IsMutable            bool                 `json:"isMutable"`
}

// Descriptor - read the descriptor of a token
func (t *Token) Descriptor(arguments *DescriptorArguments, reply *DescriptorReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	mint, err := signature.PublicKey(arguments.Mint)
	if nil != err {
		return err
	}

	m, err := t.Registrar.Descriptor(mint)
	if nil != err {
		return err
	}

	descriptorAddress, _, err := address.Metadata(mint)
	if nil != err {
		return err
	}

	reply.Address = descriptorAddress
	reply.UpdateAuthority = m.UpdateAuthority
	reply.Name = metadata.Trim(m.Data.Name)
	reply.Symbol = metadata.Trim(m.Data.Symbol)
	reply.URI = metadata.Trim(m.Data.URI)
	reply.SellerFeeBasisPoints = m.Data.SellerFeeBasisPoints
	reply.Creators = m.Data.Creators
	reply.Collection = m.Collection
	reply.Uses = m.Uses
	reply.PrimarySaleHappened = m.PrimarySaleHappened
	reply.IsMutable = m.IsMutable

	return nil
}

func (t *Token) verify(method string, arguments *signature.Arguments) (solana.PublicKey, solana.PublicKey, error) {
	mint, owner, err := arguments.Check(method, t.Window, t.Now())
	if nil != err {
		t.Log.Warnf("%s: mint: %q  owner: %q  signature error: %s", method, arguments.Mint, arguments.Owner, err)
	}
	return mint, owner, err
}
