// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/nftstages/fault"
)

var (
	ErrAuthorityOne = fault.AuthorityError("authority one")
	ErrAuthorityTwo = fault.AuthorityError("authority two")
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrExistsTwo    = fault.ExistsError("exists two")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrLengthOne    = fault.LengthError("length one")
	ErrLengthTwo    = fault.LengthError("length two")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrNotFoundTwo  = fault.NotFoundError("not found two")
	ErrProcessOne   = fault.ProcessError("process one")
	ErrProcessTwo   = fault.ProcessError("process two")
	ErrRecordOne    = fault.RecordError("record one")
	ErrRecordTwo    = fault.RecordError("record two")
	ErrRejectedOne  = fault.RejectedError("rejected one")
	ErrRejectedTwo  = fault.RejectedError("rejected two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		authority bool
		exists    bool
		invalid   bool
		length    bool
		notFound  bool
		process   bool
		record    bool
		rejected  bool
	}{
		{ErrAuthorityOne, true, false, false, false, false, false, false, false},
		{ErrAuthorityTwo, true, false, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false, false, false},
		{ErrLengthTwo, false, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false, false},
		{ErrNotFoundTwo, false, false, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false, false},
		{ErrProcessTwo, false, false, false, false, false, true, false, false},
		{ErrRecordOne, false, false, false, false, false, false, true, false},
		{ErrRecordTwo, false, false, false, false, false, false, true, false},
		{ErrRejectedOne, false, false, false, false, false, false, false, true},
		{ErrRejectedTwo, false, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthority(err) != e.authority {
			t.Errorf("%d: expected 'authority' == %v for err = %v", i, e.authority, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsErrRejected(err) != e.rejected {
			t.Errorf("%d: expected 'rejected' == %v for err = %v", i, e.rejected, err)
		}
	}
}

// the named conditions surfaced by the level engine are distinct
func TestEngineConditions(t *testing.T) {
	conditions := []error{
		fault.ErrAddressDerivationFailed,
		fault.ErrRecordNotInitialised,
		fault.ErrSignatureDerivationMismatch,
		fault.ErrExternalRewriteRejected,
		fault.ErrMalformedUriSuffix,
	}
	for i, a := range conditions {
		for j, b := range conditions {
			if i != j && a == b {
				t.Errorf("conditions %d and %d are the same error: %v", i, j, a)
			}
		}
	}
	if !fault.IsErrAuthority(fault.ErrSignatureDerivationMismatch) {
		t.Errorf("signature derivation mismatch must be an authority error")
	}
	if !fault.IsErrRejected(fault.ErrDescriptorImmutable) {
		t.Errorf("immutable descriptor must be a rejection")
	}
}
