// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stages

import (
	"github.com/bitmark-inc/nftstages/fault"
	"github.com/bitmark-inc/nftstages/level"
	"github.com/bitmark-inc/nftstages/metadata"
)

// NextURI - replace the level suffix of a descriptor uri
//
// padding is removed first; the final six characters are assumed to be
// "<digit>.json" and are not inspected
func NextURI(uri string, l level.Level) (string, error) {
	trimmed := metadata.Trim(uri)
	if len(trimmed) < level.SuffixLength {
		return "", fault.ErrMalformedUriSuffix
	}
	return trimmed[:len(trimmed)-level.SuffixLength] + l.Suffix(), nil
}
