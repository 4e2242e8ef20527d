// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic storage addresses
//
// Every address is a program derived address: a hash of fixed domain
// tags, optional identity bytes and the owning program, bumped by a
// one byte salt until the result is off the ed25519 curve.  Nothing
// is looked up, the same inputs always give the same address.
//
//   record    = PDA("DEFIxNFT" ++ mint, program)
//   authority = PDA("update_authority", program)
//   metadata  = PDA("metadata" ++ metadataProgram ++ mint, metadataProgram)
package address
