// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receiptrecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/receiptd/account"
	"github.com/bitmark-inc/receiptd/fault"
)

// Pack - serialise a receipt
//
// the result is never longer than MaxPackedLength; any field beyond
// its bound gives fault.ErrCapacityExceeded and text that is not UTF-8
// gives fault.ErrInvalidText, in both cases with no data
func (receipt *Receipt) Pack() (Packed, error) {
	if err := receipt.check(); nil != err {
		return nil, err
	}

	message := make(Packed, 0, maxPackedLength)
	message = append(message, receiptKind[:]...)
	message = appendIdentity(message, receipt.Creator)
	message = appendIdentity(message, receipt.Payer)
	message = appendString(message, receipt.TxHash)
	message = appendString(message, receipt.Title)
	message = appendString(message, receipt.Description)
	message = appendFiles(message, receipt.Files)

	var timestamp [timestampLength]byte
	binary.LittleEndian.PutUint64(timestamp[:], uint64(receipt.Timestamp))
	return append(message, timestamp[:]...), nil
}

// anything accepted here must be accepted by Unpack
func (receipt *Receipt) check() error {
	if len(receipt.TxHash) > MaxTxHashLength ||
		len(receipt.Title) > MaxTitleLength ||
		len(receipt.Description) > MaxDescriptionLength ||
		len(receipt.Files) > MaxFiles {
		return fault.ErrCapacityExceeded
	}
	for _, f := range receipt.Files {
		if len(f.Name) > MaxFileNameLength || len(f.Hash) > MaxFileHashLength {
			return fault.ErrCapacityExceeded
		}
	}

	if !utf8.ValidString(receipt.TxHash) ||
		!utf8.ValidString(receipt.Title) ||
		!utf8.ValidString(receipt.Description) {
		return fault.ErrInvalidText
	}
	for _, f := range receipt.Files {
		if !utf8.ValidString(f.Name) || !utf8.ValidString(f.Hash) {
			return fault.ErrInvalidText
		}
	}
	return nil
}

func appendIdentity(buffer Packed, identity account.Identity) Packed {
	return append(buffer, identity[:]...)
}

// append a 4 byte little-endian length followed by the bytes
func appendString(buffer Packed, s string) Packed {
	buffer = appendUint32(buffer, uint32(len(s)))
	return append(buffer, s...)
}

func appendFiles(buffer Packed, files []File) Packed {
	buffer = appendUint32(buffer, uint32(len(files)))
	for _, f := range files {
		buffer = appendString(buffer, f.Name)
		buffer = appendString(buffer, f.Hash)
	}
	return buffer
}

func appendUint32(buffer Packed, value uint32) Packed {
	var b [lengthPrefixLength]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}
