// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stages - level progression of a token
//
// a token starts at level 1 with a descriptor uri ending "1.json";
// each level up rewrites the last six characters of that uri to the
// new level and stores the new level in the token's record.  Level 6
// is terminal, further requests succeed without changing anything.
//
// The descriptor rewrite is signed by the program authority which is
// rebuilt from the salt kept in the record and compared with the
// address derived from the program alone before it can be used.
//
// Every Engine call runs inside one storage transaction, either all of
// its writes are committed or none are.
package stages
