// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all-or-nothing group of pool writes
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionImpl - transaction over a single batched database
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

func (t *TransactionImpl) Put(handle Handle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *TransactionImpl) Delete(handle Handle, key []byte) {
	handle.remove(key)
}

// Get - sees values staged earlier in this transaction
func (t *TransactionImpl) Get(handle Handle, key []byte) []byte {
	return handle.getStaged(key)
}

func (t *TransactionImpl) Has(handle Handle, key []byte) bool {
	return handle.hasStaged(key)
}

func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

func (t *TransactionImpl) Abort() {
	t.access.Abort()
}

func (t *TransactionImpl) InUse() bool {
	return t.access.InUse()
}
