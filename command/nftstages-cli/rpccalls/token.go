// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/nftstages/rpc/signature"
	"github.com/bitmark-inc/nftstages/rpc/token"
)

// IssueData - descriptor fields of a new token
type IssueData struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	IsMutable            bool
}

// Issue - create a token owned by key
func (c *Client) Issue(key solana.PrivateKey, mint solana.PublicKey, data *IssueData) (*token.IssueReply, error) {
	signed, err := signature.NewArguments(key, "Token.Issue", mint, time.Now())
	if nil != err {
		return nil, err
	}

	arguments := token.IssueArguments{
		Arguments:            *signed,
		Name:                 data.Name,
		Symbol:               data.Symbol,
		URI:                  data.URI,
		SellerFeeBasisPoints: data.SellerFeeBasisPoints,
		IsMutable:            data.IsMutable,
	}

	var reply token.IssueReply
	if err := c.call("Token.Issue", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Delegate - give the program authority the descriptor of a token
func (c *Client) Delegate(key solana.PrivateKey, mint solana.PublicKey) (*token.DelegateReply, error) {
	signed, err := signature.NewArguments(key, "Token.Delegate", mint, time.Now())
	if nil != err {
		return nil, err
	}

	var reply token.DelegateReply
	if err := c.call("Token.Delegate", &token.DelegateArguments{Arguments: *signed}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Descriptor - read the descriptor of a token
func (c *Client) Descriptor(mint solana.PublicKey) (*token.DescriptorReply, error) {
	var reply token.DescriptorReply
	if err := c.call("Token.Descriptor", &token.DescriptorArguments{Mint: mint.String()}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
