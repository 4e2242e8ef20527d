// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package level - the closed set of token levels
//
// A level starts at Minimum and advances one step at a time until it
// reaches Maximum, which is terminal.
package level

import (
	"strconv"
)

// Level - a token progression stage
type Level uint8

// the valid range
const (
	Minimum Level = 1
	Maximum Level = 6
)

// SuffixLength - bytes in "<digit>.json"
const SuffixLength = 6

// suffix for each level, index is the level
var suffixes = [...]string{
	1: "1.json",
	2: "2.json",
	3: "3.json",
	4: "4.json",
	5: "5.json",
	6: "6.json",
}

// IsValid - true if within Minimum..Maximum
func (l Level) IsValid() bool {
	return l >= Minimum && l <= Maximum
}

// IsCeiling - true once no further advance is possible
func (l Level) IsCeiling() bool {
	return l >= Maximum
}

// Next - the following level
//
// second value is false at the ceiling, the level is then returned unchanged
func (l Level) Next() (Level, bool) {
	if l.IsCeiling() {
		return l, false
	}
	return l + 1, true
}

// Suffix - descriptor file name for this level
//
// anything outside the valid range maps to the first level
func (l Level) Suffix() string {
	if !l.IsValid() {
		return suffixes[Minimum]
	}
	return suffixes[l]
}

// String - for fmt
func (l Level) String() string {
	return strconv.Itoa(int(l))
}
