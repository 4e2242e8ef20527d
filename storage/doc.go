// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte program derived address
// 4. mint         = 32 byte token identity
// 5. owner        = 32 byte ed25519 public key
//
// Level records:
//
//   R ++ address               - token level record
//                                data: discriminator ++ initialised ++ level ++ salts ++ mint
//
// Descriptors:
//
//   M ++ address               - token metadata (Borsh encoded)
//
// Ownership:
//
//   O ++ mint                  - current owner of the token
//                                data: owner
//
// Testing:
//   Z ++ key                   - testing data
//
// All writes go through a Transaction.  Nothing reaches the database
// until Commit, and Abort discards everything staged since Begin.
package storage
