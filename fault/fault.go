// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CapacityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCapacityExceeded      = CapacityError("record capacity exceeded")
	ErrCannotDecodeIdentity  = InvalidError("cannot decode identity")
	ErrCannotDecodeSlot      = InvalidError("cannot decode slot")
	ErrCertificateFileExists = ExistsError("certificate file already exists")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCryptoFailed          = ProcessError("encryption failed")
	ErrDescriptionTooLong    = LengthError("description too long")
	ErrFieldLengthOutOfRange = RecordError("field length out of range")
	ErrFileHashTooLong       = LengthError("file hash too long")
	ErrFileNameTooLong       = LengthError("file name too long")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidIdentityLength = InvalidError("invalid identity length")
	ErrInvalidListenAddress  = InvalidError("invalid listen address")
	ErrInvalidPasswordLength = InvalidError("password is too short")
	ErrInvalidPrivateKey     = InvalidError("invalid private key")
	ErrInvalidSignature      = InvalidError("invalid signature")
	ErrInvalidSlotLength     = InvalidError("invalid slot length")
	ErrInvalidSlotSize       = CapacityError("invalid slot size")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidText           = InvalidError("text is not valid UTF-8")
	ErrInvalidTextInRecord   = RecordError("record text is not valid UTF-8")
	ErrKeyFileExists         = ExistsError("key file already exists")
	ErrMissingAuthority      = InvalidError("missing authority")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrMissingSelector       = InvalidError("one of creator or payer is required")
	ErrMissingStorage        = ProcessError("storage is not initialised")
	ErrNotInitialised        = ProcessError("not initialised")
	ErrNotPrivateKey         = InvalidError("identity file does not hold a private key")
	ErrNotReceiptRecord      = RecordError("not a receipt record")
	ErrPasswordMismatch      = InvalidError("passwords do not match")
	ErrRateLimiting          = ProcessError("rate limiting")
	ErrReadOnly              = ProcessError("not available in read only mode")
	ErrReceiptAlreadyExists  = ExistsError("receipt already exists")
	ErrReceiptNotFound       = NotFoundError("receipt not found")
	ErrTitleTooLong          = LengthError("title too long")
	ErrTooManyFiles          = LimitError("too many files")
	ErrTooManyFilesInRecord  = RecordError("record has too many files")
	ErrTruncatedRecord       = RecordError("record truncated")
	ErrTxHashTooLong         = LengthError("transaction hash too long")
	ErrWrongPassword         = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CapacityError) Error() string { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrCapacity(e error) bool { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
