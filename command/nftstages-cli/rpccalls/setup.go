// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/bitmark-inc/nftstages/fault"
)

const (
	maximumTries   = 8
	maximumElapsed = 30 * time.Second
)

// Client - to hold RPC connections streams
type Client struct {
	conn       net.Conn
	client     *rpc.Client
	verbose    bool
	handle     io.Writer // if verbose is set output items here
	newBackOff func() backoff.BackOff
}

// NewClient - create a RPC connection to a nftstagesd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {
	conn, err := net.Dial("tcp", connect)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
	return r, nil
}

// Close - shutdown the nftstagesd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call a method, retrying while the server reports a transaction conflict
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		fmt.Fprintf(c.handle, "%s: %#v\n", method, arguments)
	}

	operation := func() (struct{}, error) {
		err := c.client.Call(method, arguments, reply)
		if nil == err {
			return struct{}{}, nil
		}
		if isConflict(err) {
			if c.verbose {
				fmt.Fprintf(c.handle, "%s: %s, retrying\n", method, err)
			}
			return struct{}{}, err
		}
		return struct{}{}, backoff.Permanent(err)
	}

	_, err := backoff.Retry(
		context.Background(),
		operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(maximumTries),
		backoff.WithMaxElapsedTime(maximumElapsed),
	)
	if nil != err {
		return err
	}

	if c.verbose {
		fmt.Fprintf(c.handle, "%s reply: %#v\n", method, reply)
	}
	return nil
}

// server errors arrive as text only
func isConflict(err error) bool {
	s, ok := err.(rpc.ServerError)
	return ok && fault.ErrTransactionInUse.Error() == string(s)
}
