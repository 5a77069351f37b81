// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"time"
	"unicode/utf8"

	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
	"github.com/bitmark-inc/receiptd/receiptrecord"
)

// Store - the slot store a receipt is committed to
//
// PutIfAbsent must write the whole buffer in one step and return an
// error of class fault.ExistsError if the slot already holds data
type Store interface {
	PutIfAbsent(receiptrecord.Slot, []byte) error
}

// Authority - fields that come from the execution context
type Authority struct {
	Creator account.Identity
	Clock   func() time.Time
}

// Arguments - the caller supplied fields
//
// the payer is recorded as given, nothing checks that it agreed to the
// receipt or that it relates to the creator
type Arguments struct {
	Payer       account.Identity
	TxHash      string
	Title       string
	Description string
	Files       []receiptrecord.File
}

// Validate - check the caller supplied fields against their bounds
func Validate(arguments *Arguments) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if len(arguments.Files) > receiptrecord.MaxFiles {
		return fault.ErrTooManyFiles
	}

	if err := check(arguments.TxHash, receiptrecord.MaxTxHashLength, fault.ErrTxHashTooLong); nil != err {
		return err
	}
	if err := check(arguments.Title, receiptrecord.MaxTitleLength, fault.ErrTitleTooLong); nil != err {
		return err
	}
	if err := check(arguments.Description, receiptrecord.MaxDescriptionLength, fault.ErrDescriptionTooLong); nil != err {
		return err
	}
	for _, f := range arguments.Files {
		if err := check(f.Name, receiptrecord.MaxFileNameLength, fault.ErrFileNameTooLong); nil != err {
			return err
		}
		if err := check(f.Hash, receiptrecord.MaxFileHashLength, fault.ErrFileHashTooLong); nil != err {
			return err
		}
	}
	return nil
}

// bounds are in encoded bytes, not runes
func check(s string, maximum int, tooLong error) error {
	if len(s) > maximum {
		return tooLong
	}
	if !utf8.ValidString(s) {
		return fault.ErrInvalidText
	}
	return nil
}

// Create - validate, populate and commit a new receipt at slot
func Create(store Store, authority *Authority, slot receiptrecord.Slot, arguments *Arguments) error {
	if err := Validate(arguments); nil != err {
		return err
	}
	if nil == authority || nil == authority.Clock {
		return fault.ErrMissingAuthority
	}
	if nil == store {
		return fault.ErrMissingStorage
	}

	buffer := make([]byte, receiptrecord.MaxPackedLength())

	files := make([]receiptrecord.File, len(arguments.Files))
	copy(files, arguments.Files)

	r := &receiptrecord.Receipt{
		Creator:     authority.Creator,
		Payer:       arguments.Payer,
		TxHash:      arguments.TxHash,
		Title:       arguments.Title,
		Description: arguments.Description,
		Files:       files,
		Timestamp:   authority.Clock().Unix(),
	}

	packed, err := r.Pack()
	if nil != err {
		return err
	}
	if len(packed) > len(buffer) {
		return fault.ErrCapacityExceeded
	}
	copy(buffer, packed)

	err = store.PutIfAbsent(slot, buffer)
	if fault.IsErrExists(err) {
		return fault.ErrReceiptAlreadyExists
	}
	return err
}
