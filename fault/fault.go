// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type RejectedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressDerivationFailed     = ProcessError("address derivation failed")
	ErrAlreadyInitialised          = ExistsError("already initialised")
	ErrConfigurationNotTable       = InvalidError("configuration must return a table")
	ErrCreatorSharesInvalid        = RejectedError("creator shares must total 100")
	ErrDatabaseVersion             = InvalidError("database version is newer than program")
	ErrDescriptorExists            = ExistsError("descriptor already exists")
	ErrDescriptorImmutable         = RejectedError("descriptor is immutable")
	ErrDescriptorNameTooLong       = RejectedError("descriptor name too long")
	ErrDescriptorNotFound          = RejectedError("descriptor not found")
	ErrDescriptorSymbolTooLong     = RejectedError("descriptor symbol too long")
	ErrDescriptorUriTooLong        = RejectedError("descriptor uri too long")
	ErrDiscriminatorMismatch       = RecordError("record discriminator mismatch")
	ErrExternalRewriteRejected     = RejectedError("external rewrite rejected")
	ErrInvalidCount                = InvalidError("invalid count")
	ErrInvalidFeeBasisPoints       = RejectedError("seller fee basis points out of range")
	ErrInvalidIPAddress            = InvalidError("invalid IP address")
	ErrInvalidLevel                = RecordError("level out of range")
	ErrInvalidPayer                = InvalidError("invalid payer")
	ErrInvalidPublicKey            = InvalidError("invalid public key")
	ErrInvalidSignature            = InvalidError("invalid signature")
	ErrIsMutableCannotBeReset      = RejectedError("is mutable can only be changed from true to false")
	ErrLevelMismatch               = InvalidError("level does not match record")
	ErrMalformedUriSuffix          = LengthError("uri too short for level suffix")
	ErrMissingParameters           = InvalidError("missing parameters")
	ErrNotInitialised              = NotFoundError("not initialised")
	ErrNotTokenOwner               = InvalidError("caller does not own token")
	ErrPrimarySaleCannotBeReset    = RejectedError("primary sale happened cannot be reset")
	ErrProofAlreadyUsed            = AuthorityError("authority proof already used")
	ErrRateLimiting                = InvalidError("rate limiting")
	ErrRecordDerivationMismatch    = AuthorityError("record derivation mismatch")
	ErrRecordLength                = LengthError("record length is invalid")
	ErrRecordNotInitialised        = NotFoundError("record not initialised")
	ErrSignatureDerivationMismatch = AuthorityError("signature derivation mismatch")
	ErrSignatureExpired            = InvalidError("signature expired")
	ErrTokenExists                 = ExistsError("token already exists")
	ErrTokenNotFound               = NotFoundError("token not found")
	ErrTransactionInUse            = ProcessError("transaction already in use")
	ErrUpdateAuthorityMismatch     = RejectedError("update authority mismatch")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorityError) Error() string { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }
func (e RejectedError) Error() string  { return string(e) }

// determine the class of an error
func IsErrAuthority(e error) bool { _, ok := e.(AuthorityError); return ok }
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool    { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool    { _, ok := e.(RecordError); return ok }
func IsErrRejected(e error) bool  { _, ok := e.(RejectedError); return ok }
